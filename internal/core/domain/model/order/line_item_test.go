package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/core/domain/model/order"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create free-sale item without prescription state", func(t *testing.T) {
		item, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Paracetamol 500mg", 2, 1500, false, "",
		)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, order.PrescriptionNotRequired, item.PrescriptionStatus())
		assert.Empty(t, item.PrescriptionFile())
		assert.False(t, item.BlocksAcceptance())
	})

	t.Run("should start pending when prescription is required", func(t *testing.T) {
		item, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Amoxicilina 875mg", 1, 3200, true, "receta-1.pdf",
		)

		require.NoError(t, err)
		assert.Equal(t, order.PrescriptionPending, item.PrescriptionStatus())
		assert.Equal(t, "receta-1.pdf", item.PrescriptionFile())
		assert.True(t, item.BlocksAcceptance())
	})

	t.Run("should fail when prescription is required without a file", func(t *testing.T) {
		item, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Amoxicilina 875mg", 1, 3200, true, "  ",
		)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "receta")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Paracetamol 500mg", 0, 1500, false, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cantidad")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Paracetamol 500mg", 1, -1, false, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "precio_unitario")
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should restore review state as persisted", func(t *testing.T) {
		item, err := order.RestoreLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Amoxicilina 875mg", 1, 3200,
			true, order.PrescriptionRejected, "receta-1.pdf", "Ilegible", true,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PrescriptionRejected, item.PrescriptionStatus())
		assert.Equal(t, "Ilegible", item.ReviewNotes())
		assert.True(t, item.RejectionAcknowledged())
		assert.False(t, item.BlocksAcceptance())
	})

	t.Run("should normalize stale prescription state for free-sale products", func(t *testing.T) {
		item, err := order.RestoreLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Paracetamol 500mg", 2, 1500,
			false, order.PrescriptionApproved, "stale.pdf", "stale notes", true,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PrescriptionNotRequired, item.PrescriptionStatus())
		assert.Empty(t, item.PrescriptionFile())
		assert.Empty(t, item.ReviewNotes())
		assert.False(t, item.RejectionAcknowledged())
	})

	t.Run("should promote not-required to pending when prescription is required", func(t *testing.T) {
		item, err := order.RestoreLineItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Amoxicilina 875mg", 1, 3200,
			true, order.PrescriptionNotRequired, "receta-1.pdf", "", false,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PrescriptionPending, item.PrescriptionStatus())
	})
}
