package models

type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodPoor      Mood = "poor"
)

// ParseMood validates a mood value; the empty string means not set.
func ParseMood(s string) (Mood, bool) {
	switch Mood(s) {
	case "", MoodExcellent, MoodGood, MoodOkay, MoodPoor:
		return Mood(s), true
	}
	return "", false
}

// CompletedExercise records the actuals for one exercise in a session.
type CompletedExercise struct {
	TemplateID  string   `json:"template_id"`
	Name        string   `json:"name"`
	Sets        *int     `json:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	Completed   bool     `json:"completed"`
}

// WorkoutLog is one completed session for one member on one date.
type WorkoutLog struct {
	ID               string              `json:"id"`
	MemberID         string              `json:"member_id"`
	Date             string              `json:"date"` // YYYY-MM-DD format
	Exercises        []CompletedExercise `json:"exercises"`
	TotalDurationMin int                 `json:"total_duration_min"`
	CaloriesBurned   *int                `json:"calories_burned,omitempty"`
	Mood             Mood                `json:"mood,omitempty"`
	Notes            string              `json:"notes,omitempty"`
}

// WorkoutLogPatch is a partial update; nil fields are left unchanged.
type WorkoutLogPatch struct {
	Date             *string
	Exercises        []CompletedExercise
	TotalDurationMin *int
	Mood             *Mood
	Notes            *string
}

func (l *WorkoutLog) Apply(p WorkoutLogPatch) {
	if p.Date != nil {
		l.Date = *p.Date
	}
	if p.Exercises != nil {
		l.Exercises = p.Exercises
	}
	if p.TotalDurationMin != nil {
		l.TotalDurationMin = *p.TotalDurationMin
	}
	if p.Mood != nil {
		l.Mood = *p.Mood
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}

// PrefillFromPlan builds the exercise checklist for a new log from the
// member's plan catalog snapshot, everything initially not completed.
func PrefillFromPlan(plan *WorkoutPlan) []CompletedExercise {
	if plan == nil {
		return nil
	}
	exercises := make([]CompletedExercise, 0, len(plan.Exercises))
	for _, t := range plan.Exercises {
		exercises = append(exercises, CompletedExercise{
			TemplateID:  t.ID,
			Name:        t.Name,
			Sets:        t.DefaultSets,
			Reps:        t.DefaultReps,
			DurationMin: t.DefaultDurationMin,
			WeightKg:    t.DefaultWeightKg,
			Completed:   false,
		})
	}
	return exercises
}
