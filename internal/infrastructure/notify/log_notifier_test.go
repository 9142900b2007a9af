package notify

import (
	"context"
	"testing"

	"backing_tracks/internal/domain/entities"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_Notify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	err := n.Notify(context.Background(), entities.Notification{
		Kind:      entities.NotificationRequestReceived,
		RequestID: "req-1",
		To:        "a@example.com",
		Subject:   "We got your request",
		Body:      "Estimated price: $5 - $10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["request_id"] != "req-1" || fields["kind"] != "request_received" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}
