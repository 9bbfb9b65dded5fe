package stats

import (
	"sort"
	"time"

	"github.com/teamfit/teamfit/internal/models"
)

// MemberProgress is one member's row on the team progress board.
type MemberProgress struct {
	Member           models.Member
	TotalWorkouts    int
	TotalDurationMin int
	// Recent7Days counts distinct workout days in the trailing 7 days;
	// Recent7Workouts and Recent7DurationMin count the logs themselves.
	Recent7Days        int
	Recent7Workouts    int
	Recent7DurationMin int
	// WeeklyRatio is Recent7Days over a full week, capped at 1.
	WeeklyRatio float64
	// GoalProgress is the mean progress across the member's goals.
	GoalProgress int
	// LastWorkout is the member's most recent log date, zero when they
	// have never logged.
	LastWorkout time.Time
}

// TeamOverview is the dashboard headline block.
type TeamOverview struct {
	MemberCount int
	// ActiveWorkoutPlans counts members who have a workout plan set up.
	ActiveWorkoutPlans int
	TotalWorkouts      int
	WorkoutsThisWeek   int
	// ActiveChallenges counts non-completed participations across the
	// whole team.
	ActiveChallenges int
}

// TeamProgress computes the per-member board rows, most recent workout
// first and members who never logged last.
func TeamProgress(members []models.Member, logs []models.WorkoutLog, goals []models.Goal, now time.Time) []MemberProgress {
	byMember := make(map[string][]models.WorkoutLog)
	for _, log := range logs {
		byMember[log.MemberID] = append(byMember[log.MemberID], log)
	}
	goalsByMember := make(map[string][]models.Goal)
	for _, g := range goals {
		goalsByMember[g.MemberID] = append(goalsByMember[g.MemberID], g)
	}

	rows := make([]MemberProgress, 0, len(members))
	for _, m := range members {
		memberLogs := byMember[m.ID]
		row := MemberProgress{
			Member:        m,
			TotalWorkouts: len(memberLogs),
			GoalProgress:  meanGoalProgress(goalsByMember[m.ID]),
		}
		from := startOfDay(now).AddDate(0, 0, -6)
		days := make(map[string]struct{})
		for _, log := range memberLogs {
			row.TotalDurationMin += log.TotalDurationMin
			date, ok := parseDate(log.Date)
			if !ok {
				continue
			}
			if date.After(row.LastWorkout) {
				row.LastWorkout = date
			}
			if !date.Before(from) && !date.After(now) {
				days[log.Date] = struct{}{}
				row.Recent7Workouts++
				row.Recent7DurationMin += log.TotalDurationMin
			}
		}
		row.Recent7Days = len(days)
		row.WeeklyRatio = float64(row.Recent7Days) / 7
		if row.WeeklyRatio > 1 {
			row.WeeklyRatio = 1
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LastWorkout.After(rows[j].LastWorkout)
	})
	return rows
}

// Overview computes the dashboard headline counters. This week runs from
// the most recent Sunday through now.
func Overview(members []models.Member, logs []models.WorkoutLog, now time.Time) TeamOverview {
	o := TeamOverview{
		MemberCount:   len(members),
		TotalWorkouts: len(logs),
	}
	weekStart := startOfWeek(now)
	for _, log := range logs {
		if date, ok := parseDate(log.Date); ok && !date.Before(weekStart) && !date.After(now) {
			o.WorkoutsThisWeek++
		}
	}
	for _, m := range members {
		if m.WorkoutPlan != nil {
			o.ActiveWorkoutPlans++
		}
		for _, p := range m.Challenges {
			if !p.Completed {
				o.ActiveChallenges++
			}
		}
	}
	return o
}
