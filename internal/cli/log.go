package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

type LogAddCmd struct {
	Member   string `arg:"" help:"Member ID or name."`
	Duration int    `short:"d" help:"Total duration in minutes." required:""`
	Date     string `help:"Workout date (YYYY-MM-DD), defaults to today."`
	Mood     string `short:"m" help:"Mood after the workout (excellent|good|okay|poor)."`
	Notes    string `short:"n" help:"Free-form notes."`
	Calories int    `short:"c" help:"Calories burned." default:"-1"`
	// Exercises are name[:done] entries; omit to prefill from the member's
	// plan for today.
	Exercises []string `short:"x" help:"Completed exercises (name or name:done)."`
	Plan      bool     `short:"p" help:"Prefill the exercise checklist from the member's plan."`
}

func (c *LogAddCmd) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	} else if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", c.Date)
	}

	mood, ok := models.ParseMood(c.Mood)
	if !ok {
		return fmt.Errorf("invalid mood: %s", c.Mood)
	}

	log := models.WorkoutLog{
		ID:               uuid.New().String(),
		MemberID:         member.ID,
		Date:             date,
		TotalDurationMin: c.Duration,
		Mood:             mood,
		Notes:            c.Notes,
	}
	if c.Calories >= 0 {
		calories := c.Calories
		log.CaloriesBurned = &calories
	}

	if c.Plan {
		log.Exercises = models.PrefillFromPlan(member.WorkoutPlan)
	}
	for _, entry := range c.Exercises {
		name := entry
		done := true
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			name = entry[:i]
			done = entry[i+1:] == "done"
		}
		log.Exercises = append(log.Exercises, models.CompletedExercise{Name: name, Completed: done})
	}

	if err := ctx.Store.AddWorkoutLog(log); err != nil {
		return err
	}

	fmt.Printf("Logged %s workout for %s on %s\n", formatDuration(c.Duration), member.Name, date)
	return nil
}

type LogListCmd struct {
	Member string `arg:"" optional:"" help:"Member ID or name; omit for the whole team."`
	Limit  int    `short:"l" help:"Maximum number of logs to show." default:"10"`
}

func (c *LogListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var logs []models.WorkoutLog
	var err error
	if c.Member == "" {
		logs, err = ctx.Store.WorkoutLogs()
	} else {
		var member models.Member
		member, err = resolveMember(ctx, c.Member)
		if err != nil {
			return err
		}
		logs, err = ctx.Store.MemberWorkoutLogs(member.ID)
	}
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No workouts logged")
		return nil
	}

	names := make(map[string]string)
	if c.Member == "" {
		members, err := ctx.Store.Members()
		if err != nil {
			return err
		}
		for _, m := range members {
			names[m.ID] = m.Name
		}
	}

	// Newest first.
	start := len(logs) - 1
	shown := 0
	fmt.Println("Workouts:")
	for i := start; i >= 0 && shown < c.Limit; i-- {
		log := logs[i]
		line := fmt.Sprintf("  %s  %s", log.Date, formatDuration(log.TotalDurationMin))
		if c.Member == "" {
			name := names[log.MemberID]
			if name == "" {
				name = log.MemberID
			}
			line += fmt.Sprintf("  %s", name)
		}
		if log.Mood != "" {
			line += fmt.Sprintf("  (%s)", log.Mood)
		}
		fmt.Println(line)
		if log.Notes != "" {
			fmt.Printf("      %s\n", log.Notes)
		}
		shown++
	}

	return nil
}
