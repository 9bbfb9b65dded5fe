package stats

import (
	"math"
	"time"

	"github.com/teamfit/teamfit/internal/models"
)

// Summary is the headline metric block shown on the statistics screen. The
// metrics cover only logs dated on or after the period's window start, so
// the numbers agree with the chart below them.
type Summary struct {
	TotalWorkouts    int
	TotalDurationMin int
	AvgDurationMin   int
	// AvgWeeklyFrequency is workouts per week over the span from the
	// earliest in-window log to now, to one decimal place.
	AvgWeeklyFrequency float64
	// RecentConsistency is the percentage of the trailing 7 days with at
	// least one workout.
	RecentConsistency int
	// GoalProgress is the mean progress across all goals, rounded.
	GoalProgress int
}

// Summarize computes the metric block for one member's logs and goals.
// Logs before the period's window start, or with unparseable dates, are
// excluded. Zero in-window logs yield zero averages rather than NaN.
func Summarize(logs []models.WorkoutLog, goals []models.Goal, period Period, now time.Time) Summary {
	var s Summary

	start := windowStart(period, now)
	var filtered []models.WorkoutLog
	var earliest time.Time
	for _, log := range logs {
		date, ok := parseDate(log.Date)
		if !ok || date.Before(start) {
			continue
		}
		filtered = append(filtered, log)
		s.TotalDurationMin += log.TotalDurationMin
		if earliest.IsZero() || date.Before(earliest) {
			earliest = date
		}
	}
	s.TotalWorkouts = len(filtered)

	if s.TotalWorkouts > 0 {
		s.AvgDurationMin = int(math.Round(float64(s.TotalDurationMin) / float64(s.TotalWorkouts)))
	}

	if !earliest.IsZero() {
		// Span is the plain day difference, floored at one so a
		// first-day log still yields a finite rate.
		spanDays := int(startOfDay(now).Sub(earliest).Hours() / 24)
		if spanDays < 1 {
			spanDays = 1
		}
		weeks := float64(spanDays) / 7
		s.AvgWeeklyFrequency = math.Round(float64(s.TotalWorkouts)/weeks*10) / 10
	}

	s.RecentConsistency = recentConsistency(filtered, now)
	s.GoalProgress = meanGoalProgress(goals)
	return s
}

// recentConsistency counts distinct workout days in the trailing 7 calendar
// days (today included) as a percentage.
func recentConsistency(logs []models.WorkoutLog, now time.Time) int {
	from := startOfDay(now).AddDate(0, 0, -6)
	days := make(map[string]struct{})
	for _, log := range logs {
		date, ok := parseDate(log.Date)
		if !ok {
			continue
		}
		if !date.Before(from) && !date.After(now) {
			days[log.Date] = struct{}{}
		}
	}
	return int(math.Round(float64(len(days)) / 7 * 100))
}

func meanGoalProgress(goals []models.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	total := 0
	for _, g := range goals {
		total += g.Progress
	}
	return int(math.Round(float64(total) / float64(len(goals))))
}
