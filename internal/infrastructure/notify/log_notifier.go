package notify

import (
	"context"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogNotifier hands rendered messages to the log stream, where the mail relay
// picks them up. It never fails.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, msg entities.Notification) error {
	n.logger.Info("[notify] outgoing message",
		zap.String("kind", string(msg.Kind)),
		zap.String("request_id", msg.RequestID),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
