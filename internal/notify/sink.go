package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSink is a Sink that only logs deliveries. It stands in for the real
// transport in development and keeps the wiring honest in tests.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the event and reports success
func (s *LogSink) Deliver(_ context.Context, event Event) error {
	s.logger.Info("notification delivered",
		zap.Uint("recipient_id", event.RecipientID),
		zap.String("type", string(event.Type)),
		zap.Uint("actor_id", event.ActorID),
		zap.Uint("entity_id", event.EntityID),
		zap.String("entity_type", string(event.EntityType)))
	return nil
}
