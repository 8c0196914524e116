package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingUpdateValue(t *testing.T) {
	t.Run("typed values are validated", func(t *testing.T) {
		s, err := NewSetting("low_stock_threshold", "10", SettingInteger, "", "inventory")
		require.NoError(t, err)

		require.NoError(t, s.UpdateValue("25", nil))
		v, err := s.IntValue()
		require.NoError(t, err)
		assert.Equal(t, 25, v)

		assert.Error(t, s.UpdateValue("not-a-number", nil))
	})

	t.Run("decimal setting", func(t *testing.T) {
		s, _ := NewSetting("tax_rate", "18", SettingDecimal, "", "billing")
		require.NoError(t, s.UpdateValue("12.5", nil))
		assert.Error(t, s.UpdateValue("abc", nil))
	})

	t.Run("boolean setting", func(t *testing.T) {
		s, _ := NewSetting("sms_enabled", "false", SettingBoolean, "", "notifications")
		require.NoError(t, s.UpdateValue("true", nil))
		b, err := s.BoolValue()
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("locked setting rejects updates", func(t *testing.T) {
		s, _ := NewSetting("store_code", "MAIN", SettingString, "", "store")
		s.IsEditable = false
		assert.Error(t, s.UpdateValue("OTHER", nil))
	})
}

func TestNewAuditLog(t *testing.T) {
	log, err := NewAuditLog(nil, "product.update", "products", nil, `{"name":"old"}`, `{"name":"new"}`)
	require.NoError(t, err)
	assert.Equal(t, "product.update", log.Action)

	_, err = NewAuditLog(nil, "", "", nil, "", "")
	assert.Error(t, err)
}
