package stats

import (
	"time"

	"github.com/teamfit/teamfit/internal/models"
)

// Bucket is one point in a workout series.
type Bucket struct {
	Label        string
	Start        time.Time
	DurationMin  int
	WorkoutCount int
	// Mood is the mood of the last log falling on the day, empty when the
	// day has no logs or the last log carries no mood.
	Mood models.Mood
}

// Series buckets the logs per day across the period's window, oldest bucket
// first. Every day in the window is present even when empty, so chart
// renderers get a dense series. Logs outside the window or with unparseable
// dates are dropped.
func Series(logs []models.WorkoutLog, period Period, now time.Time) []Bucket {
	starts := window(period, now)
	buckets := make([]Bucket, len(starts))
	index := make(map[time.Time]int, len(starts))
	for i, start := range starts {
		buckets[i] = Bucket{Label: bucketLabel(period, start), Start: start}
		index[start] = i
	}

	for _, log := range logs {
		date, ok := parseDate(log.Date)
		if !ok {
			continue
		}
		i, ok := index[startOfDay(date)]
		if !ok {
			continue
		}
		buckets[i].DurationMin += log.TotalDurationMin
		buckets[i].WorkoutCount++
		buckets[i].Mood = log.Mood
	}
	return buckets
}
