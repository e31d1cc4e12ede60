package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	client "github.com/lovelyhome/carehome/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// ErrEmptyMessage is returned when there is nothing to send.
var ErrEmptyMessage = errors.New("notification message is empty")

// Notifier delivers short text alerts to the home coordinator.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// WhatsAppNotifier pushes alerts to the coordinator's WhatsApp number.
type WhatsAppNotifier struct {
	client      client.Client
	coordinator string
	logger      *zap.Logger
}

// NewWhatsAppNotifier wires a notifier that sends to coordinator via c.
func NewWhatsAppNotifier(c client.Client, coordinator string, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{client: c, coordinator: coordinator, logger: logger}
}

// Notify sends message with a bounded timeout.
func (n *WhatsAppNotifier) Notify(ctx context.Context, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	resp, err := n.client.SendTextMessage(ctxWithTimeout, client.SendTextMessageRequest{
		To:   n.coordinator,
		Body: message,
	})
	if err != nil {
		return fmt.Errorf("notify coordinator: %w", err)
	}

	fields := []zap.Field{zap.String("to", n.coordinator)}
	if resp != nil && len(resp.Messages) > 0 {
		fields = append(fields, zap.String("message_id", resp.Messages[0].ID))
	}
	n.logger.Info("coordinator notified", fields...)
	return nil
}

// LogNotifier records alerts in the log when no messaging channel is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a notifier that only logs.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs message at info level.
func (n *LogNotifier) Notify(_ context.Context, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	n.logger.Info("notification", zap.String("message", message))
	return nil
}
