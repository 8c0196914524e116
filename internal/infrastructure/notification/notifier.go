package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

// Notifier delivers a short message to a phone number.
type Notifier interface {
	Send(ctx context.Context, phone, message string) error
}

// SMSNotifier is a gateway stub for text messages. It validates and logs
// the outgoing message; wiring a real SMS provider replaces only this type.
type SMSNotifier struct {
	cfg    config.NotificationConfig
	logger *zap.Logger
}

// NewSMSNotifier creates a new SMSNotifier
func NewSMSNotifier(cfg config.NotificationConfig, logger *zap.Logger) *SMSNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMSNotifier{cfg: cfg, logger: logger}
}

// Send logs the SMS that would be dispatched. Disabled channels drop the
// message silently so callers never branch on configuration.
func (n *SMSNotifier) Send(ctx context.Context, phone, message string) error {
	if err := validate(phone, message); err != nil {
		return err
	}
	if !n.cfg.SMSEnabled {
		n.logger.Debug("SMS channel disabled, dropping message", zap.String("phone", phone))
		return nil
	}
	n.logger.Info("SMS dispatched",
		zap.String("sender_id", n.cfg.SenderID),
		zap.String("phone", phone),
		zap.Int("length", len(message)))
	return nil
}

// CallNotifier is a gateway stub for automated voice calls.
type CallNotifier struct {
	cfg    config.NotificationConfig
	logger *zap.Logger
}

// NewCallNotifier creates a new CallNotifier
func NewCallNotifier(cfg config.NotificationConfig, logger *zap.Logger) *CallNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallNotifier{cfg: cfg, logger: logger}
}

// Send logs the voice call that would be placed
func (n *CallNotifier) Send(ctx context.Context, phone, message string) error {
	if err := validate(phone, message); err != nil {
		return err
	}
	if !n.cfg.CallEnabled {
		n.logger.Debug("Call channel disabled, dropping message", zap.String("phone", phone))
		return nil
	}
	n.logger.Info("Voice call placed",
		zap.String("sender_id", n.cfg.SenderID),
		zap.String("phone", phone))
	return nil
}

func validate(phone, message string) error {
	if strings.TrimSpace(phone) == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}
	return nil
}

// Ensure both stubs satisfy Notifier
var (
	_ Notifier = (*SMSNotifier)(nil)
	_ Notifier = (*CallNotifier)(nil)
)
