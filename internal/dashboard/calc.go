package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

const dayKeyLayout = "2006-01-02"

// TrailingDays returns the calendar-day keys for the n days ending today,
// oldest first.
func TrailingDays(now time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format(dayKeyLayout))
	}
	return days
}

// FillMissingDays densifies a sparse date-keyed series onto exactly the
// given day keys, in the given order. Days absent from the input get a
// zero-valued record. Input order and input days outside the window are
// irrelevant; the output always has len(days) entries.
func FillMissingDays(series []DayPoint, days []string) []DayPoint {
	byDate := make(map[string]DayPoint, len(series))
	for _, point := range series {
		byDate[point.Date] = point
	}

	out := make([]DayPoint, 0, len(days))
	for _, day := range days {
		if point, ok := byDate[day]; ok {
			out = append(out, point)
			continue
		}
		out = append(out, DayPoint{
			Date:    day,
			Revenue: decimal.Zero,
			Profit:  decimal.Zero,
		})
	}
	return out
}
