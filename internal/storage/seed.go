package storage

import "github.com/teamfit/teamfit/internal/models"

func intPtr(v int) *int { return &v }

// DefaultExerciseTemplates is the starter catalog written to an empty
// exercise_templates collection.
func DefaultExerciseTemplates() []models.ExerciseTemplate {
	return []models.ExerciseTemplate{
		{
			ID:          "sq_basic_5x5",
			Name:        "Barbell Squat",
			Type:        models.ExerciseStrength,
			DefaultSets: intPtr(5),
			DefaultReps: intPtr(5),
			RestSec:     intPtr(90),
		},
		{
			ID:          "bp_basic_5x5",
			Name:        "Bench Press",
			Type:        models.ExerciseStrength,
			DefaultSets: intPtr(5),
			DefaultReps: intPtr(5),
			RestSec:     intPtr(90),
		},
		{
			ID:          "dl_basic_1x5",
			Name:        "Deadlift",
			Type:        models.ExerciseStrength,
			DefaultSets: intPtr(1),
			DefaultReps: intPtr(5),
			RestSec:     intPtr(120),
		},
		{
			ID:                 "run_30min",
			Name:               "Easy Run",
			Type:               models.ExerciseCardio,
			DefaultDurationMin: intPtr(30),
		},
	}
}

// DefaultChallenges is the starter challenge list written to an empty
// challenges collection.
func DefaultChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:            "challenge-weight-loss-4w",
			Title:         "4-Week Weight Loss",
			Description:   "Train at least four times a week for four weeks.",
			DurationDays:  28,
			TargetPerWeek: 4,
			Type:          models.ChallengeIndividual,
		},
		{
			ID:            "challenge-run-5k",
			Title:         "5km Run",
			Description:   "Build up to a full 5km run over four weeks.",
			DurationDays:  28,
			TargetPerWeek: 3,
			Type:          models.ChallengeIndividual,
		},
		{
			ID:            "challenge-team-100k-steps",
			Title:         "Team 100k Steps",
			Description:   "Walk 100,000 steps together in one week.",
			DurationDays:  7,
			TargetPerWeek: 7,
			Type:          models.ChallengeTeam,
		},
	}
}
