package stats

import (
	"testing"
	"time"

	"github.com/teamfit/teamfit/internal/models"
)

// A fixed Thursday so week boundaries are predictable.
var testNow = time.Date(2026, 8, 27, 15, 30, 0, 0, time.Local)

func log(date string, duration int, mood models.Mood) models.WorkoutLog {
	return models.WorkoutLog{MemberID: "m1", Date: date, TotalDurationMin: duration, Mood: mood}
}

func TestDaySeriesHas31Buckets(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2026-08-27", 45, models.MoodGood),
		log("2026-08-27", 30, models.MoodOkay),
		log("2026-08-01", 60, ""),
		log("2026-07-28", 20, ""), // first day of the window
		log("2026-07-27", 90, ""), // one day outside
	}

	buckets := Series(logs, PeriodDay, testNow)
	if len(buckets) != 31 {
		t.Fatalf("expected 31 day buckets, got %d", len(buckets))
	}

	first, last := buckets[0], buckets[30]
	if first.Label != "07/28" {
		t.Errorf("expected first bucket 07/28, got %s", first.Label)
	}
	if last.Label != "08/27" {
		t.Errorf("expected last bucket 08/27, got %s", last.Label)
	}
	if last.DurationMin != 75 || last.WorkoutCount != 2 {
		t.Errorf("today's bucket: duration %d count %d", last.DurationMin, last.WorkoutCount)
	}
	if last.Mood != models.MoodOkay {
		t.Errorf("expected mood of last log, got %s", last.Mood)
	}

	total := 0
	for _, b := range buckets {
		total += b.WorkoutCount
	}
	if total != 4 {
		t.Errorf("expected 4 logs inside window, got %d", total)
	}
	if first.WorkoutCount != 1 {
		t.Errorf("first bucket count %d, want 1", first.WorkoutCount)
	}
}

func TestWeekSeriesIsDailyAcrossSevenWeeks(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2026-08-24", 30, ""), // Monday this week
		log("2026-08-26", 45, ""), // Wednesday this week
	}

	buckets := Series(logs, PeriodWeek, testNow)
	// Sunday 07/12 through Saturday 08/29, one bucket per day.
	if len(buckets) != 49 {
		t.Fatalf("expected 49 daily buckets, got %d", len(buckets))
	}
	if buckets[0].Start.Weekday() != time.Sunday {
		t.Errorf("window starts on %s, want Sunday", buckets[0].Start.Weekday())
	}
	if buckets[48].Start.Weekday() != time.Saturday {
		t.Errorf("window ends on %s, want Saturday", buckets[48].Start.Weekday())
	}
	if buckets[0].Label != "07/12" || buckets[48].Label != "08/29" {
		t.Errorf("window labels: %s .. %s", buckets[0].Label, buckets[48].Label)
	}

	// Same week, different days: the logs stay in separate buckets.
	counted := 0
	for _, b := range buckets {
		if b.WorkoutCount > 1 {
			t.Errorf("bucket %s aggregated %d logs across days", b.Label, b.WorkoutCount)
		}
		counted += b.WorkoutCount
	}
	if counted != 2 {
		t.Errorf("expected 2 logs in window, got %d", counted)
	}
}

func TestMonthSeriesIsDailyAcrossSixMonths(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2026-03-01", 30, ""),
		log("2026-02-28", 30, ""), // before the window
		log("2026-08-15", 45, ""),
	}

	buckets := Series(logs, PeriodMonth, testNow)
	// March 1 through August 31, one bucket per day.
	if len(buckets) != 184 {
		t.Fatalf("expected 184 daily buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "2026-03" || buckets[183].Label != "2026-08" {
		t.Errorf("window labels: %s .. %s", buckets[0].Label, buckets[183].Label)
	}
	if buckets[0].WorkoutCount != 1 {
		t.Errorf("March 1 bucket count %d, want 1", buckets[0].WorkoutCount)
	}
	counted := 0
	for _, b := range buckets {
		counted += b.WorkoutCount
	}
	if counted != 2 {
		t.Errorf("expected 2 logs in window, got %d", counted)
	}
}

func TestSeriesMoodFollowsLastLogOfDay(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2026-08-27", 45, models.MoodGood),
		log("2026-08-27", 30, ""), // last log of the day, no mood recorded
	}

	buckets := Series(logs, PeriodDay, testNow)
	if got := buckets[30].Mood; got != "" {
		t.Errorf("expected empty mood from last log, got %s", got)
	}
}

func TestSeriesSkipsBadDates(t *testing.T) {
	buckets := Series([]models.WorkoutLog{log("not-a-date", 30, "")}, PeriodDay, testNow)
	for _, b := range buckets {
		if b.WorkoutCount != 0 {
			t.Fatalf("bad date landed in bucket %s", b.Label)
		}
	}
}

func TestSummarize(t *testing.T) {
	// 14-day span (08/13 .. today), 4 workouts in the day window plus one
	// ancient log that must not count.
	logs := []models.WorkoutLog{
		log("2026-08-13", 30, ""),
		log("2026-08-22", 45, ""),
		log("2026-08-25", 60, ""),
		log("2026-08-25", 15, ""),
		log("2024-01-01", 500, ""), // long before the window
	}
	goals := []models.Goal{
		{MemberID: "m1", Progress: 40},
		{MemberID: "m1", Progress: 90},
	}

	s := Summarize(logs, goals, PeriodDay, testNow)
	if s.TotalWorkouts != 4 {
		t.Errorf("TotalWorkouts = %d, want 4", s.TotalWorkouts)
	}
	if s.TotalDurationMin != 150 {
		t.Errorf("TotalDurationMin = %d, want 150", s.TotalDurationMin)
	}
	if s.AvgDurationMin != 38 {
		t.Errorf("AvgDurationMin = %d, want 38", s.AvgDurationMin)
	}
	// 4 workouts over the 14 days from 08/13 to today = 2.0 per week.
	if s.AvgWeeklyFrequency != 2.0 {
		t.Errorf("AvgWeeklyFrequency = %v, want 2.0", s.AvgWeeklyFrequency)
	}
	// 08/22 and 08/25 (twice, one day) fall in 08/21..08/27: 2 of 7 days
	// rounds to 29.
	if s.RecentConsistency != 29 {
		t.Errorf("RecentConsistency = %d, want 29", s.RecentConsistency)
	}
	if s.GoalProgress != 65 {
		t.Errorf("GoalProgress = %d, want 65", s.GoalProgress)
	}
}

func TestSummarizeFiltersByPeriodWindow(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2024-01-01", 60, ""),
		log("2026-08-27", 30, ""),
	}
	s := Summarize(logs, nil, PeriodDay, testNow)
	if s.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1", s.TotalWorkouts)
	}
	if s.TotalDurationMin != 30 {
		t.Errorf("TotalDurationMin = %d, want 30", s.TotalDurationMin)
	}

	// The month window reaches back to March and admits both 2026 logs.
	logs = append(logs, log("2026-03-05", 20, ""))
	s = Summarize(logs, nil, PeriodMonth, testNow)
	if s.TotalWorkouts != 2 {
		t.Errorf("month TotalWorkouts = %d, want 2", s.TotalWorkouts)
	}
	if s.TotalDurationMin != 50 {
		t.Errorf("month TotalDurationMin = %d, want 50", s.TotalDurationMin)
	}
}

func TestSummarizeWeeklyFrequencySpan(t *testing.T) {
	// Earliest log exactly 7 days back: 2 workouts over one week.
	logs := []models.WorkoutLog{
		log("2026-08-20", 30, ""),
		log("2026-08-27", 30, ""),
	}
	s := Summarize(logs, nil, PeriodDay, testNow)
	if s.AvgWeeklyFrequency != 2.0 {
		t.Errorf("AvgWeeklyFrequency = %v, want 2.0", s.AvgWeeklyFrequency)
	}
}

func TestSummarizeRecentConsistencyThreeDays(t *testing.T) {
	logs := []models.WorkoutLog{
		log("2026-08-27", 30, ""),
		log("2026-08-24", 30, ""),
		log("2026-08-21", 30, ""),
	}
	s := Summarize(logs, nil, PeriodDay, testNow)
	// 3 of 7 days rounds to 43.
	if s.RecentConsistency != 43 {
		t.Errorf("RecentConsistency = %d, want 43", s.RecentConsistency)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, PeriodDay, testNow)
	if s.TotalWorkouts != 0 || s.AvgDurationMin != 0 || s.AvgWeeklyFrequency != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
	if s.RecentConsistency != 0 || s.GoalProgress != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
}

func TestTeamProgressOrdering(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Alice"},
		{ID: "m2", Name: "Bob"},
		{ID: "m3", Name: "Cara"},
	}
	logs := []models.WorkoutLog{
		{MemberID: "m1", Date: "2026-08-20", TotalDurationMin: 30},
		{MemberID: "m2", Date: "2026-08-27", TotalDurationMin: 45},
		{MemberID: "m2", Date: "2026-08-26", TotalDurationMin: 45},
	}
	goals := []models.Goal{{MemberID: "m1", Progress: 50}}

	rows := TeamProgress(members, logs, goals, testNow)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Member.ID != "m2" {
		t.Errorf("expected most recent logger first, got %s", rows[0].Member.ID)
	}
	if rows[2].Member.ID != "m3" {
		t.Errorf("expected member with no logs last, got %s", rows[2].Member.ID)
	}
	if rows[0].Recent7Days != 2 {
		t.Errorf("Recent7Days = %d, want 2", rows[0].Recent7Days)
	}
	if rows[0].Recent7Workouts != 2 || rows[0].Recent7DurationMin != 90 {
		t.Errorf("recent 7d: %d workouts %dm, want 2 workouts 90m",
			rows[0].Recent7Workouts, rows[0].Recent7DurationMin)
	}
	if rows[0].TotalDurationMin != 90 {
		t.Errorf("TotalDurationMin = %d, want 90", rows[0].TotalDurationMin)
	}
	if want := 2.0 / 7; rows[0].WeeklyRatio != want {
		t.Errorf("WeeklyRatio = %v, want %v", rows[0].WeeklyRatio, want)
	}
	if rows[1].GoalProgress != 50 {
		t.Errorf("GoalProgress = %d, want 50", rows[1].GoalProgress)
	}
}

func TestOverview(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Challenges: []models.ChallengeParticipation{
			{ChallengeID: "c1"},
			{ChallengeID: "c2", Completed: true},
		}},
		{ID: "m2", WorkoutPlan: &models.WorkoutPlan{}},
	}
	logs := []models.WorkoutLog{
		{MemberID: "m1", Date: "2026-08-24", TotalDurationMin: 30}, // Monday this week
		{MemberID: "m1", Date: "2026-08-22", TotalDurationMin: 30}, // Saturday last week
	}

	o := Overview(members, logs, testNow)
	if o.MemberCount != 2 || o.TotalWorkouts != 2 {
		t.Errorf("counts: %+v", o)
	}
	if o.ActiveWorkoutPlans != 1 {
		t.Errorf("ActiveWorkoutPlans = %d, want 1", o.ActiveWorkoutPlans)
	}
	if o.WorkoutsThisWeek != 1 {
		t.Errorf("WorkoutsThisWeek = %d, want 1", o.WorkoutsThisWeek)
	}
	if o.ActiveChallenges != 1 {
		t.Errorf("ActiveChallenges = %d, want 1", o.ActiveChallenges)
	}
}

func TestParsePeriod(t *testing.T) {
	if _, err := ParsePeriod("week"); err != nil {
		t.Errorf("week should parse: %v", err)
	}
	if _, err := ParsePeriod("year"); err == nil {
		t.Error("year should not parse")
	}
}
