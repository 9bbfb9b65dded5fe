package cli

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

type DemoCmd struct {
	Members  int   `short:"m" help:"Number of demo members to generate." default:"5"`
	Workouts int   `short:"w" help:"Workout logs per member." default:"12"`
	Seed     int64 `help:"Random seed for reproducible data." default:"0"`
}

func (c *DemoCmd) Validate() error {
	if c.Members <= 0 || c.Workouts < 0 {
		return fmt.Errorf("members must be positive and workouts non-negative")
	}
	return nil
}

// Run fills the store with plausible fake team data for trying the TUI and
// statistics screens.
func (c *DemoCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	faker := gofakeit.New(c.Seed)

	challenges, err := ctx.Store.Challenges()
	if err != nil {
		return err
	}

	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	fitnessGoals := []models.FitnessGoal{
		models.FitnessWeightLoss, models.FitnessMuscleGain, models.FitnessEndurance,
		models.FitnessFlexibility, models.FitnessStrength, models.FitnessGeneralFitness,
	}
	moods := []models.Mood{models.MoodExcellent, models.MoodGood, models.MoodOkay, models.MoodPoor}
	goalTitles := []string{"Lose 5 kg", "Run a 10k", "Bench bodyweight", "Stretch daily", "Train 4x a week"}

	for i := 0; i < c.Members; i++ {
		member := models.Member{
			ID:    uuid.New().String(),
			Name:  faker.Name(),
			Email: faker.Email(),
			Physical: models.PhysicalInfo{
				HeightCm: float64(faker.Number(150, 200)),
				WeightKg: float64(faker.Number(50, 110)),
				Age:      faker.Number(18, 65),
				Gender:   genders[faker.Number(0, len(genders)-1)],
			},
			FitnessGoals: []models.FitnessGoal{fitnessGoals[faker.Number(0, len(fitnessGoals)-1)]},
			CreatedAt:    time.Now(),
		}
		if len(challenges) > 0 && faker.Bool() {
			ch := challenges[faker.Number(0, len(challenges)-1)]
			member.Challenges = []models.ChallengeParticipation{{
				ChallengeID:  ch.ID,
				StartedAt:    time.Now().AddDate(0, 0, -faker.Number(1, ch.DurationDays)),
				ProgressDays: faker.Number(0, ch.DurationDays),
			}}
		}
		if err := ctx.Store.AddMember(member); err != nil {
			return err
		}

		for j := 0; j < c.Workouts; j++ {
			date := time.Now().AddDate(0, 0, -faker.Number(0, 30))
			calories := faker.Number(150, 700)
			log := models.WorkoutLog{
				ID:               uuid.New().String(),
				MemberID:         member.ID,
				Date:             date.Format(constants.DateFormat),
				TotalDurationMin: faker.Number(20, 90),
				CaloriesBurned:   &calories,
				Mood:             moods[faker.Number(0, len(moods)-1)],
			}
			if err := ctx.Store.AddWorkoutLog(log); err != nil {
				return err
			}
		}

		goal := models.Goal{
			ID:        uuid.New().String(),
			Title:     goalTitles[faker.Number(0, len(goalTitles)-1)],
			Type:      models.GoalFrequency,
			StartDate: time.Now().AddDate(0, 0, -30).Format(constants.DateFormat),
			Progress:  faker.Number(0, 100),
		}
		if err := ctx.Store.AddGoal(member.ID, goal); err != nil {
			return err
		}
	}

	fmt.Printf("Generated %d demo members with %d workouts each\n", c.Members, c.Workouts)
	return nil
}
