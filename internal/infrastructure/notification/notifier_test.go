package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/infrastructure/config"
)

func TestSMSNotifier_Send(t *testing.T) {
	t.Run("sends when the channel is enabled", func(t *testing.T) {
		n := NewSMSNotifier(config.NotificationConfig{SMSEnabled: true, SenderID: "POSSTR"}, zap.NewNop())
		err := n.Send(context.Background(), "+919812345678", "Your bill total is 708.00")
		assert.NoError(t, err)
	})

	t.Run("drops silently when the channel is disabled", func(t *testing.T) {
		n := NewSMSNotifier(config.NotificationConfig{SMSEnabled: false}, zap.NewNop())
		err := n.Send(context.Background(), "+919812345678", "hello")
		assert.NoError(t, err)
	})

	t.Run("rejects empty phone", func(t *testing.T) {
		n := NewSMSNotifier(config.NotificationConfig{SMSEnabled: true}, zap.NewNop())
		err := n.Send(context.Background(), "  ", "hello")
		assert.Error(t, err)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		n := NewSMSNotifier(config.NotificationConfig{SMSEnabled: true}, zap.NewNop())
		err := n.Send(context.Background(), "+919812345678", "")
		assert.Error(t, err)
	})
}

func TestCallNotifier_Send(t *testing.T) {
	t.Run("places a call when enabled", func(t *testing.T) {
		n := NewCallNotifier(config.NotificationConfig{CallEnabled: true}, zap.NewNop())
		err := n.Send(context.Background(), "+919812345678", "Stock alert")
		assert.NoError(t, err)
	})

	t.Run("works with a nil logger", func(t *testing.T) {
		n := NewCallNotifier(config.NotificationConfig{CallEnabled: true}, nil)
		err := n.Send(context.Background(), "+919812345678", "Stock alert")
		assert.NoError(t, err)
	})
}
