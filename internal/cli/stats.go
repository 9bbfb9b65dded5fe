package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamfit/teamfit/internal/stats"
)

type StatsCmd struct {
	Member string `arg:"" help:"Member ID or name."`
	Period string `short:"p" help:"Bucketing period (day|week|month)." default:"day"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	period, err := stats.ParsePeriod(c.Period)
	if err != nil {
		return err
	}
	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.MemberWorkoutLogs(member.ID)
	if err != nil {
		return err
	}
	goals, err := ctx.Store.MemberGoals(member.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	summary := stats.Summarize(logs, goals, period, now)

	fmt.Printf("Statistics for %s\n\n", member.Name)
	fmt.Printf("  Total workouts:     %d\n", summary.TotalWorkouts)
	fmt.Printf("  Total duration:     %s\n", formatDuration(summary.TotalDurationMin))
	fmt.Printf("  Average duration:   %s\n", formatDuration(summary.AvgDurationMin))
	fmt.Printf("  Weekly frequency:   %.1f\n", summary.AvgWeeklyFrequency)
	fmt.Printf("  7-day consistency:  %d%%\n", summary.RecentConsistency)
	fmt.Printf("  Goal progress:      %d%%\n", summary.GoalProgress)
	fmt.Println()

	series := stats.Series(logs, period, now)
	printSeries(series)
	return nil
}

// printSeries renders an ASCII bar per bucket, scaled to the busiest one.
func printSeries(series []stats.Bucket) {
	maxDuration := 0
	for _, b := range series {
		if b.DurationMin > maxDuration {
			maxDuration = b.DurationMin
		}
	}
	if maxDuration == 0 {
		fmt.Println("No workouts in this window.")
		return
	}

	const width = 40
	for _, b := range series {
		bar := strings.Repeat("█", b.DurationMin*width/maxDuration)
		if b.DurationMin > 0 && bar == "" {
			bar = "▏"
		}
		fmt.Printf("  %-8s %-*s %s", b.Label, width, bar, formatDuration(b.DurationMin))
		if b.WorkoutCount > 1 {
			fmt.Printf(" (%d workouts)", b.WorkoutCount)
		}
		fmt.Println()
	}
}
