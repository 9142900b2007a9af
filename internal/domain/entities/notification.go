package entities

// NotificationKind identifies the message template.
type NotificationKind string

const (
	NotificationRequestReceived NotificationKind = "request_received"
	NotificationPriceFinalised  NotificationKind = "price_finalised"
	NotificationStatusChanged   NotificationKind = "status_changed"
)

// Notification is an outgoing customer message, already rendered.
type Notification struct {
	Kind      NotificationKind
	RequestID string
	To        string
	Subject   string
	Body      string
}
