package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type FitnessGoal string

const (
	FitnessWeightLoss     FitnessGoal = "weight_loss"
	FitnessMuscleGain     FitnessGoal = "muscle_gain"
	FitnessEndurance      FitnessGoal = "endurance"
	FitnessFlexibility    FitnessGoal = "flexibility"
	FitnessStrength       FitnessGoal = "strength"
	FitnessGeneralFitness FitnessGoal = "general_fitness"
)

// PhysicalInfo holds a member's body measurements. BodyFatPct and
// MuscleMassKg are optional and stay absent when never recorded.
type PhysicalInfo struct {
	HeightCm     float64  `json:"height_cm"`
	WeightKg     float64  `json:"weight_kg"`
	Age          int      `json:"age"`
	Gender       Gender   `json:"gender"`
	BodyFatPct   *float64 `json:"body_fat_pct,omitempty"`
	MuscleMassKg *float64 `json:"muscle_mass_kg,omitempty"`
}

// Member is a tracked team member. Goals live in the global goals
// collection and are looked up by member ID; challenge participations are
// embedded here and have no global collection.
type Member struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Email        string                   `json:"email,omitempty"`
	Physical     PhysicalInfo             `json:"physical"`
	FitnessGoals []FitnessGoal            `json:"fitness_goals"`
	WorkoutPlan  *WorkoutPlan             `json:"workout_plan,omitempty"`
	Challenges   []ChallengeParticipation `json:"challenges,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// MemberPatch is a partial update; nil fields are left unchanged.
type MemberPatch struct {
	Name         *string
	Email        *string
	Physical     *PhysicalInfo
	FitnessGoals []FitnessGoal
	WorkoutPlan  *WorkoutPlan
	Challenges   []ChallengeParticipation
}

func (m *Member) Apply(p MemberPatch) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Physical != nil {
		m.Physical = *p.Physical
	}
	if p.FitnessGoals != nil {
		m.FitnessGoals = p.FitnessGoals
	}
	if p.WorkoutPlan != nil {
		m.WorkoutPlan = p.WorkoutPlan
	}
	if p.Challenges != nil {
		m.Challenges = p.Challenges
	}
}

// ParseFitnessGoal validates a fitness goal tag.
func ParseFitnessGoal(s string) (FitnessGoal, bool) {
	switch FitnessGoal(s) {
	case FitnessWeightLoss, FitnessMuscleGain, FitnessEndurance,
		FitnessFlexibility, FitnessStrength, FitnessGeneralFitness:
		return FitnessGoal(s), true
	}
	return "", false
}

// ParseGender validates a gender value.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), true
	}
	return "", false
}
