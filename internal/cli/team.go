package cli

import (
	"fmt"
	"time"

	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/stats"
)

type TeamCmd struct{}

func (c *TeamCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.Members()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("No members found. Add one with 'teamfit member add'.")
		return nil
	}
	logs, err := ctx.Store.WorkoutLogs()
	if err != nil {
		return err
	}
	goals, err := ctx.Store.Goals()
	if err != nil {
		return err
	}
	encouragements, err := ctx.Store.Encouragements()
	if err != nil {
		return err
	}

	rows := stats.TeamProgress(members, logs, goals, time.Now())

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	fmt.Println("Team progress:")
	for _, row := range rows {
		last := "never"
		if !row.LastWorkout.IsZero() {
			last = row.LastWorkout.Format("2006-01-02")
		}
		fmt.Printf("  %-20s %3d workouts (%s)  7d %d/%s  goals %3d%%  last %s\n",
			row.Member.Name, row.TotalWorkouts, formatDuration(row.TotalDurationMin),
			row.Recent7Workouts, formatDuration(row.Recent7DurationMin),
			row.GoalProgress, last)
		for _, e := range lastEncouragements(encouragements, row.Member.ID, 3) {
			from := names[e.FromMemberID]
			if from == "" {
				from = e.FromMemberID
			}
			fmt.Printf("      %s: %q\n", from, e.Message)
		}
	}

	return nil
}

// lastEncouragements returns up to n of the newest encouragements sent to
// the member, newest first. Encouragements are stored in arrival order.
func lastEncouragements(all []models.Encouragement, memberID string, n int) []models.Encouragement {
	var recent []models.Encouragement
	for i := len(all) - 1; i >= 0 && len(recent) < n; i-- {
		if all[i].ToMemberID == memberID {
			recent = append(recent, all[i])
		}
	}
	return recent
}

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.Members()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.WorkoutLogs()
	if err != nil {
		return err
	}

	o := stats.Overview(members, logs, time.Now())

	fmt.Println("Team dashboard:")
	fmt.Printf("  Members:            %d\n", o.MemberCount)
	fmt.Printf("  Active plans:       %d\n", o.ActiveWorkoutPlans)
	fmt.Printf("  Total workouts:     %d\n", o.TotalWorkouts)
	fmt.Printf("  Workouts this week: %d\n", o.WorkoutsThisWeek)
	fmt.Printf("  Active challenges:  %d\n", o.ActiveChallenges)

	encouragements, err := ctx.Store.Encouragements()
	if err != nil {
		return err
	}
	if n := len(encouragements); n > 0 {
		fmt.Printf("  Encouragements:     %d\n", n)
	}

	return nil
}
