package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

type PlanShowCmd struct {
	Member string `arg:"" help:"Member ID or name."`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	if member.WorkoutPlan == nil {
		fmt.Printf("%s has no workout plan. Add exercises with 'teamfit plan add'.\n", member.Name)
		return nil
	}

	plan := member.WorkoutPlan
	fmt.Printf("Workout plan for %s (started %s)\n", member.Name, plan.StartDate)
	if plan.Program != nil && plan.Program.Name != "" {
		fmt.Printf("Program: %s\n", plan.Program.Name)
	}

	names := make(map[string]string, len(plan.Exercises))
	for _, t := range plan.Exercises {
		names[t.ID] = t.Name
	}

	for _, day := range models.Weekdays() {
		ids := plan.WeeklySchedule.Day(day)
		if len(ids) == 0 {
			continue
		}
		var labels []string
		for _, id := range ids {
			if name := names[id]; name != "" {
				labels = append(labels, name)
			} else {
				labels = append(labels, id)
			}
		}
		fmt.Printf("  %-9s %s\n", day, strings.Join(labels, ", "))
	}

	return nil
}

type PlanAddCmd struct {
	Member   string `arg:"" help:"Member ID or name."`
	Exercise string `arg:"" help:"Exercise template ID."`
	Day      string `short:"d" help:"Weekday to schedule (mon..sun)." required:""`
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	day, ok := models.ParseWeekday(strings.ToLower(c.Day))
	if !ok {
		return fmt.Errorf("invalid weekday: %s", c.Day)
	}
	template, found, err := ctx.Store.ExerciseTemplate(c.Exercise)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("exercise not found: %s (see the catalog with 'teamfit plan show')", c.Exercise)
	}

	plan := member.WorkoutPlan
	if plan == nil {
		catalog, err := ctx.Store.ExerciseTemplates()
		if err != nil {
			return err
		}
		plan = &models.WorkoutPlan{
			ID:        uuid.New().String(),
			MemberID:  member.ID,
			Goals:     member.FitnessGoals,
			Exercises: catalog,
			StartDate: time.Now().Format(constants.DateFormat),
			CreatedAt: time.Now(),
		}
	}
	if plan.Program == nil {
		plan.Program = &models.WorkoutProgram{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("%s's program", member.Name),
			Phase:     "base",
			Weeks:     4,
			CreatedAt: time.Now(),
		}
	}

	session, ok := plan.Program.SessionFor(day)
	if !ok {
		session = models.ProgramSession{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("%s session", day),
			DayOfWeek: day,
		}
	}
	set := models.NewSetFromTemplate(uuid.New().String(), template, len(session.Sets)+1)
	session.Sets = append(session.Sets, set)

	replaced := false
	for i := range plan.Program.Sessions {
		if plan.Program.Sessions[i].DayOfWeek == day {
			plan.Program.Sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		plan.Program.Sessions = append(plan.Program.Sessions, session)
	}
	plan.Program.DaysPerWeek = len(plan.Program.Sessions)
	plan.WeeklySchedule = models.ScheduleFromProgram(plan.Program)

	if err := ctx.Store.UpdateMember(member.ID, models.MemberPatch{WorkoutPlan: plan}); err != nil {
		return err
	}

	fmt.Printf("Scheduled %s on %s for %s\n", template.Name, day, member.Name)
	return nil
}

type PlanRemoveCmd struct {
	Member   string `arg:"" help:"Member ID or name."`
	Exercise string `arg:"" help:"Exercise template ID."`
	Day      string `short:"d" help:"Weekday to remove from (mon..sun)." required:""`
}

func (c *PlanRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	day, ok := models.ParseWeekday(strings.ToLower(c.Day))
	if !ok {
		return fmt.Errorf("invalid weekday: %s", c.Day)
	}
	plan := member.WorkoutPlan
	if plan == nil || plan.Program == nil {
		return fmt.Errorf("%s has no workout plan", member.Name)
	}

	removed := false
	sessions := plan.Program.Sessions[:0]
	for _, session := range plan.Program.Sessions {
		if session.DayOfWeek != day {
			sessions = append(sessions, session)
			continue
		}
		sets := session.Sets[:0]
		for _, set := range session.Sets {
			if set.TemplateID == c.Exercise {
				removed = true
				continue
			}
			sets = append(sets, set)
		}
		session.Sets = sets
		// Days without sets have no session at all.
		if len(session.Sets) > 0 {
			sessions = append(sessions, session)
		}
	}
	if !removed {
		return fmt.Errorf("%s is not scheduled on %s", c.Exercise, day)
	}

	plan.Program.Sessions = sessions
	plan.Program.DaysPerWeek = len(sessions)
	plan.WeeklySchedule = models.ScheduleFromProgram(plan.Program)

	if err := ctx.Store.UpdateMember(member.ID, models.MemberPatch{WorkoutPlan: plan}); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s for %s\n", c.Exercise, day, member.Name)
	return nil
}

type PlanSaveCmd struct {
	Member string `arg:"" help:"Member ID or name."`
	Name   string `short:"n" help:"Name to save the program under."`
}

func (c *PlanSaveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	if member.WorkoutPlan == nil || member.WorkoutPlan.Program == nil {
		return fmt.Errorf("%s has no workout plan to save", member.Name)
	}

	program := *member.WorkoutPlan.Program
	if c.Name != "" {
		program.Name = c.Name
	}
	if err := ctx.Store.SaveProgram(program); err != nil {
		return err
	}

	fmt.Printf("Saved program %q to the shared library\n", program.Name)
	return nil
}
