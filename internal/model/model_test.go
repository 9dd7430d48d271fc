package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientTimeNormalizesToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "2026-03-10T15:04:05+07:00", want: "2026-03-10T08:04:05Z"},
		{in: "2026-03-10T15:04", want: "2026-03-10T15:04:00Z"},
		{in: "2026-03-10", want: "2026-03-10T00:00:00Z"},
	}

	for _, tt := range tests {
		got, err := ParseClientTime(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Format(time.RFC3339))
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestParseClientTimeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseClientTime("next tuesday")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseClientTimeEmptyDefaultsToNow(t *testing.T) {
	t.Parallel()

	got, err := ParseClientTime("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), got, time.Second)
}

func TestFillPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, InventorySummary{TotalTanks: 0, FullTanks: 0}.FillPercentage(), "no division by zero")
	assert.Equal(t, 90.0, InventorySummary{TotalTanks: 100, FullTanks: 90}.FillPercentage())
	assert.True(t, InventorySummary{TotalTanks: 100, FullTanks: 19}.LowStock())
	assert.False(t, InventorySummary{TotalTanks: 100, FullTanks: 20}.LowStock())
}

func TestMovementTypeValid(t *testing.T) {
	t.Parallel()

	for _, typ := range []MovementType{MovementAddStock, MovementReplenishment, MovementDelivery, MovementSale} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, MovementType("refund").Valid())
	assert.False(t, MovementType("").Valid())
}
