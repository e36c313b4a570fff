package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	days := TrailingDays(now, 7)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-08-26", days[0])
	assert.Equal(t, "2026-09-01", days[6], "today is the newest entry")
}

func TestFillMissingDays(t *testing.T) {
	days := []string{"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31", "2026-09-01"}

	// Sparse, deliberately out of order, with a day outside the window.
	series := []DayPoint{
		{Date: "2026-08-30", Sales: 4, Revenue: decimal.NewFromInt(8000), Profit: decimal.NewFromInt(2500)},
		{Date: "2026-08-26", Sales: 1, Revenue: decimal.NewFromInt(1000), Profit: decimal.NewFromInt(400)},
		{Date: "2026-07-01", Sales: 99, Revenue: decimal.NewFromInt(99999), Profit: decimal.NewFromInt(9999)},
	}

	out := FillMissingDays(series, days)
	require.Len(t, out, len(days), "always one entry per requested day")
	for i, day := range days {
		assert.Equal(t, day, out[i].Date, "output order follows the requested days")
	}

	assert.Equal(t, int64(1), out[0].Sales)
	assert.Equal(t, int64(4), out[4].Sales)
	for _, i := range []int{1, 2, 3, 5, 6} {
		assert.Zero(t, out[i].Sales, "missing day %s", out[i].Date)
		assert.True(t, out[i].Revenue.IsZero())
		assert.True(t, out[i].Profit.IsZero())
	}
}

func TestFillMissingDaysEmptySeries(t *testing.T) {
	days := TrailingDays(time.Now(), 7)
	out := FillMissingDays(nil, days)
	require.Len(t, out, 7)
	for i, point := range out {
		assert.Equal(t, days[i], point.Date)
		assert.Zero(t, point.Sales)
	}
}
