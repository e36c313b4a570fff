package replenish

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no expiry date", func(t *testing.T) {
		status := BatchExpiry(nil, now)
		assert.False(t, status.Expired)
		assert.Equal(t, "No expiry", status.Label)
	})

	t.Run("expired yesterday", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		status := BatchExpiry(&yesterday, now)
		assert.True(t, status.Expired)
		assert.Equal(t, "Expired", status.Label)
	})

	t.Run("expires later today counts one day", func(t *testing.T) {
		tonight := now.Add(6 * time.Hour)
		status := BatchExpiry(&tonight, now)
		assert.False(t, status.Expired)
		assert.Equal(t, 1, status.DaysUntilExpiry, "partial days round up")
	})

	t.Run("three and a half days rounds to four", func(t *testing.T) {
		expiry := now.Add(84 * time.Hour)
		status := BatchExpiry(&expiry, now)
		assert.False(t, status.Expired)
		assert.Equal(t, 4, status.DaysUntilExpiry)
		assert.Equal(t, "Expires in 4 days", status.Label)
	})
}

func TestBatchMargin(t *testing.T) {
	margin, ok := BatchMargin(decimal.NewFromInt(600), decimal.NewFromInt(1000))
	require.True(t, ok)
	assert.Equal(t, "66.7", margin.StringFixed(1))

	margin, ok = BatchMargin(decimal.NewFromInt(1000), decimal.NewFromInt(800))
	require.True(t, ok)
	assert.Equal(t, "-20.0", margin.StringFixed(1), "selling below cost is a negative margin")

	_, ok = BatchMargin(decimal.Zero, decimal.NewFromInt(1000))
	assert.False(t, ok, "zero cost leaves the margin undefined")
}
