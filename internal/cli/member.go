package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/models"
)

type MemberAddCmd struct {
	Name    string  `arg:"" help:"Member name."`
	Email   string  `short:"e" help:"Email address."`
	Height  float64 `short:"H" help:"Height in centimeters." required:""`
	Weight  float64 `short:"w" help:"Weight in kilograms." required:""`
	Age     int     `short:"a" help:"Age in years." required:""`
	Gender  string  `short:"g" help:"Gender (male|female|other)." default:"other"`
	Goals   string  `short:"G" help:"Comma-separated fitness goals (weight_loss|muscle_gain|endurance|flexibility|strength|general_fitness)."`
	BodyFat float64 `help:"Body fat percentage." default:"-1"`
	Muscle  float64 `help:"Muscle mass in kilograms." default:"-1"`
}

func (c *MemberAddCmd) Validate() error {
	if c.Height <= 0 || c.Weight <= 0 {
		return fmt.Errorf("height and weight must be positive")
	}
	if c.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	return nil
}

func (c *MemberAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	gender, ok := models.ParseGender(c.Gender)
	if !ok {
		return fmt.Errorf("invalid gender: %s", c.Gender)
	}
	goals, err := parseFitnessGoals(c.Goals)
	if err != nil {
		return err
	}

	physical := models.PhysicalInfo{
		HeightCm: c.Height,
		WeightKg: c.Weight,
		Age:      c.Age,
		Gender:   gender,
	}
	if c.BodyFat >= 0 {
		physical.BodyFatPct = &c.BodyFat
	}
	if c.Muscle >= 0 {
		physical.MuscleMassKg = &c.Muscle
	}

	member := models.Member{
		ID:           uuid.New().String(),
		Name:         c.Name,
		Email:        c.Email,
		Physical:     physical,
		FitnessGoals: goals,
		CreatedAt:    time.Now(),
	}

	if err := ctx.Store.AddMember(member); err != nil {
		return err
	}

	fmt.Printf("Added member: %s (ID: %s)\n", c.Name, member.ID)
	return nil
}

type MemberListCmd struct{}

func (c *MemberListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.Members()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("No members found")
		return nil
	}

	fmt.Println("Members:")
	for _, m := range members {
		fmt.Printf("  %s (ID: %s)\n", m.Name, m.ID)
		fmt.Printf("      %d years, %.0f cm, %.1f kg - goals: %s\n",
			m.Physical.Age, m.Physical.HeightCm, m.Physical.WeightKg, formatGoalList(m.FitnessGoals))
	}

	return nil
}

type MemberShowCmd struct {
	Member string `arg:"" help:"Member ID or name."`
}

func (c *MemberShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %s)\n", member.Name, member.ID)
	if member.Email != "" {
		fmt.Printf("  Email: %s\n", member.Email)
	}
	fmt.Printf("  Physical: %d years, %.0f cm, %.1f kg, %s\n",
		member.Physical.Age, member.Physical.HeightCm, member.Physical.WeightKg, member.Physical.Gender)
	if member.Physical.BodyFatPct != nil {
		fmt.Printf("  Body fat: %.1f%%\n", *member.Physical.BodyFatPct)
	}
	if member.Physical.MuscleMassKg != nil {
		fmt.Printf("  Muscle mass: %.1f kg\n", *member.Physical.MuscleMassKg)
	}
	fmt.Printf("  Fitness goals: %s\n", formatGoalList(member.FitnessGoals))

	goals, err := ctx.Store.MemberGoals(member.ID)
	if err != nil {
		return err
	}
	if len(goals) > 0 {
		fmt.Println("  Goals:")
		for _, g := range goals {
			fmt.Printf("    [%s] %s - %d%%\n", g.Status, g.Title, g.Progress)
		}
	}

	if len(member.Challenges) > 0 {
		fmt.Println("  Challenges:")
		for _, p := range member.Challenges {
			challenge, found, err := ctx.Store.Challenge(p.ChallengeID)
			if err != nil {
				return err
			}
			title := p.ChallengeID
			percent := 0
			if found {
				title = challenge.Title
				percent = p.ProgressPercent(challenge.DurationDays)
			}
			state := fmt.Sprintf("%d%%", percent)
			if p.Completed {
				state = "completed"
			}
			fmt.Printf("    %s - %s\n", title, state)
		}
	}

	logs, err := ctx.Store.MemberWorkoutLogs(member.ID)
	if err != nil {
		return err
	}
	fmt.Printf("  Workouts logged: %d\n", len(logs))

	return nil
}

type MemberEditCmd struct {
	Member string  `arg:"" help:"Member ID or name."`
	Name   string  `help:"New name."`
	Email  string  `help:"New email address."`
	Weight float64 `short:"w" help:"New weight in kilograms." default:"-1"`
	Goals  string  `short:"G" help:"Replacement comma-separated fitness goals."`
}

func (c *MemberEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	var patch models.MemberPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Email != "" {
		patch.Email = &c.Email
	}
	if c.Weight >= 0 {
		physical := member.Physical
		physical.WeightKg = c.Weight
		patch.Physical = &physical
	}
	if c.Goals != "" {
		goals, err := parseFitnessGoals(c.Goals)
		if err != nil {
			return err
		}
		patch.FitnessGoals = goals
	}

	if err := ctx.Store.UpdateMember(member.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated member: %s\n", member.Name)
	return nil
}

type MemberDeleteCmd struct {
	Member string `arg:"" help:"Member ID or name."`
}

func (c *MemberDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteMember(member.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted member: %s\n", member.Name)
	fmt.Println("Their workout logs and goals are kept for team history.")
	return nil
}
