package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

type GoalAddCmd struct {
	Member      string  `arg:"" help:"Member ID or name."`
	Title       string  `arg:"" help:"Goal title."`
	Type        string  `short:"t" help:"Goal type (weight|frequency|performance|habit)." required:""`
	Description string  `short:"d" help:"Longer description."`
	Target      float64 `help:"Target value." default:"0"`
	Unit        string  `short:"u" help:"Unit for the target value (kg, km, sessions, ...)."`
	TargetDate  string  `help:"Target date (YYYY-MM-DD)."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	goalType, ok := models.ParseGoalType(c.Type)
	if !ok {
		return fmt.Errorf("invalid goal type: %s", c.Type)
	}
	if c.TargetDate != "" {
		if _, err := time.Parse(constants.DateFormat, c.TargetDate); err != nil {
			return fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", c.TargetDate)
		}
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Type:        goalType,
		Unit:        c.Unit,
		StartDate:   time.Now().Format(constants.DateFormat),
		TargetDate:  c.TargetDate,
	}
	if c.Target != 0 {
		goal.TargetValue = &c.Target
	}

	if err := ctx.Store.AddGoal(member.ID, goal); err != nil {
		return err
	}

	fmt.Printf("Added goal for %s: %s (ID: %s)\n", member.Name, c.Title, goal.ID)
	return nil
}

type GoalListCmd struct {
	Member string `arg:"" optional:"" help:"Member ID or name; omit for all goals."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var goals []models.Goal
	var err error
	if c.Member == "" {
		goals, err = ctx.Store.Goals()
	} else {
		var member models.Member
		member, err = resolveMember(ctx, c.Member)
		if err != nil {
			return err
		}
		goals, err = ctx.Store.MemberGoals(member.ID)
	}
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals found")
		return nil
	}

	fmt.Println("Goals:")
	for _, g := range goals {
		fmt.Printf("  [%s] %s - %d%% (ID: %s)\n", g.Status, g.Title, g.Progress, g.ID)
		if g.TargetValue != nil {
			fmt.Printf("      Target: %g %s by %s\n", *g.TargetValue, g.Unit, g.TargetDate)
		}
	}

	return nil
}

type GoalProgressCmd struct {
	Member   string `arg:"" help:"Member ID or name."`
	Goal     string `arg:"" help:"Goal ID."`
	Progress int    `arg:"" help:"Progress percentage (0-100)."`
	Failed   bool   `help:"Mark the goal as failed instead."`
}

func (c *GoalProgressCmd) Validate() error {
	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

func (c *GoalProgressCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	patch := models.GoalPatch{Progress: &c.Progress}
	if c.Failed {
		failed := models.GoalFailed
		patch.Status = &failed
	}
	if err := ctx.Store.UpdateGoal(member.ID, c.Goal, patch); err != nil {
		return err
	}

	goals, err := ctx.Store.MemberGoals(member.ID)
	if err != nil {
		return err
	}
	for _, g := range goals {
		if g.ID == c.Goal {
			fmt.Printf("Goal %q is now %s at %d%%\n", g.Title, g.Status, g.Progress)
			return nil
		}
	}
	return fmt.Errorf("goal not found: %s", c.Goal)
}
