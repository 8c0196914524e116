package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement(t *testing.T) {
	pid := uuid.New()

	t.Run("valid", func(t *testing.T) {
		m, err := NewMovement(pid, MovementOut, 3, ReferenceSale, nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, -3, m.Delta())
		assert.False(t, m.MovementDate.IsZero())
	})

	t.Run("in movement has positive delta", func(t *testing.T) {
		m, err := NewMovement(pid, MovementIn, 5, ReferencePurchase, nil, nil, "restock")
		require.NoError(t, err)
		assert.Equal(t, 5, m.Delta())
	})

	t.Run("adjustment has no implicit delta", func(t *testing.T) {
		m, err := NewMovement(pid, MovementAdjustment, 2, ReferenceAdjustment, nil, nil, "count fix")
		require.NoError(t, err)
		assert.Equal(t, 0, m.Delta())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewMovement(pid, MovementOut, 0, ReferenceSale, nil, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects missing product", func(t *testing.T) {
		_, err := NewMovement(uuid.Nil, MovementOut, 1, ReferenceSale, nil, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewMovement(pid, MovementType("teleport"), 1, ReferenceSale, nil, nil, "")
		assert.Error(t, err)
	})
}
