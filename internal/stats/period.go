package stats

import (
	"fmt"
	"time"

	"github.com/teamfit/teamfit/internal/constants"
)

// Period selects the bucketing granularity for a statistics series.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period flag value.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q (want day, week, or month)", s)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Sunday beginning the week containing t.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// windowStart returns the first day of the period's window. Day reaches 30
// days back, week to the Sunday starting the week 42 days ago, and month to
// the first of the month 5 months ago. Summaries filter by the same start.
func windowStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return startOfWeek(now.AddDate(0, 0, -42))
	case PeriodMonth:
		return startOfMonth(now.AddDate(0, -5, 0))
	default:
		return startOfDay(now).AddDate(0, 0, -30)
	}
}

// windowEnd returns the last day of the period's window. Week and month run
// through the end of the current week and month.
func windowEnd(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return startOfWeek(now).AddDate(0, 0, 6)
	case PeriodMonth:
		return startOfMonth(now).AddDate(0, 1, -1)
	default:
		return startOfDay(now)
	}
}

// window enumerates one bucket per calendar day across the period's range,
// oldest first. Every period stays day-granular; week and month only widen
// the range and change the label format.
func window(period Period, now time.Time) []time.Time {
	var days []time.Time
	last := windowEnd(period, now)
	for cur := windowStart(period, now); !cur.After(last); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

func bucketLabel(period Period, start time.Time) string {
	if period == PeriodMonth {
		return start.Format(constants.ChartMonthLabel)
	}
	return start.Format(constants.ChartDayLabel)
}

// parseDate parses a stored YYYY-MM-DD log date. Unparseable dates report
// ok=false and are skipped by the aggregations.
func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
