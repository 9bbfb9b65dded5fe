package models

import "time"

type ExerciseType string

const (
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseStrength    ExerciseType = "strength"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseBalance     ExerciseType = "balance"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven day keys in schedule order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday accepts full names and three-letter abbreviations.
func ParseWeekday(s string) (Weekday, bool) {
	switch s {
	case "mon", "monday":
		return Monday, true
	case "tue", "tuesday":
		return Tuesday, true
	case "wed", "wednesday":
		return Wednesday, true
	case "thu", "thursday":
		return Thursday, true
	case "fri", "friday":
		return Friday, true
	case "sat", "saturday":
		return Saturday, true
	case "sun", "sunday":
		return Sunday, true
	}
	return "", false
}

// ExerciseTemplate is a catalog entry. The default fields seed new exercise
// sets and each can be overridden per set.
type ExerciseTemplate struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Type               ExerciseType `json:"type"`
	DefaultSets        *int         `json:"default_sets,omitempty"`
	DefaultReps        *int         `json:"default_reps,omitempty"`
	DefaultDurationMin *int         `json:"default_duration_min,omitempty"`
	DefaultWeightKg    *float64     `json:"default_weight_kg,omitempty"`
	RestSec            *int         `json:"rest_sec,omitempty"`
}

// ExerciseSet is one scheduled unit inside a program session.
type ExerciseSet struct {
	ID          string   `json:"id"`
	TemplateID  string   `json:"template_id"`
	Order       int      `json:"order"`
	Sets        int      `json:"sets"`
	Reps        *int     `json:"reps,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	RestSec     *int     `json:"rest_sec,omitempty"`
}

// NewSetFromTemplate builds a set with the template's defaults filled in.
func NewSetFromTemplate(id string, t ExerciseTemplate, order int) ExerciseSet {
	sets := 3
	if t.DefaultSets != nil {
		sets = *t.DefaultSets
	}
	return ExerciseSet{
		ID:          id,
		TemplateID:  t.ID,
		Order:       order,
		Sets:        sets,
		Reps:        t.DefaultReps,
		DurationMin: t.DefaultDurationMin,
		WeightKg:    t.DefaultWeightKg,
		RestSec:     t.RestSec,
	}
}

// ProgramSession is one weekday's scheduled sets. Days without sets have no
// session at all.
type ProgramSession struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	DayOfWeek Weekday       `json:"day_of_week"`
	Sets      []ExerciseSet `json:"exercise_sets"`
}

type WorkoutProgram struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Phase       string           `json:"phase"`
	Weeks       int              `json:"weeks"`
	DaysPerWeek int              `json:"days_per_week"`
	Sessions    []ProgramSession `json:"sessions"`
	CreatedAt   time.Time        `json:"created_at"`
}

// SessionFor returns the session scheduled on the given weekday, if any.
func (p *WorkoutProgram) SessionFor(day Weekday) (ProgramSession, bool) {
	for _, s := range p.Sessions {
		if s.DayOfWeek == day {
			return s, true
		}
	}
	return ProgramSession{}, false
}

// WeeklySchedule maps each weekday to the exercise template IDs scheduled on
// it. It is derived from the program's sessions, never authored directly.
type WeeklySchedule struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

func (ws *WeeklySchedule) Day(d Weekday) []string {
	switch d {
	case Monday:
		return ws.Monday
	case Tuesday:
		return ws.Tuesday
	case Wednesday:
		return ws.Wednesday
	case Thursday:
		return ws.Thursday
	case Friday:
		return ws.Friday
	case Saturday:
		return ws.Saturday
	case Sunday:
		return ws.Sunday
	}
	return nil
}

func (ws *WeeklySchedule) SetDay(d Weekday, ids []string) {
	switch d {
	case Monday:
		ws.Monday = ids
	case Tuesday:
		ws.Tuesday = ids
	case Wednesday:
		ws.Wednesday = ids
	case Thursday:
		ws.Thursday = ids
	case Friday:
		ws.Friday = ids
	case Saturday:
		ws.Saturday = ids
	case Sunday:
		ws.Sunday = ids
	}
}

// ScheduleFromProgram derives the weekly schedule as the unique template IDs
// per day, in first-seen order.
func ScheduleFromProgram(p *WorkoutProgram) WeeklySchedule {
	var ws WeeklySchedule
	if p == nil {
		return ws
	}
	for _, day := range Weekdays() {
		session, ok := p.SessionFor(day)
		if !ok {
			continue
		}
		seen := make(map[string]bool)
		var ids []string
		for _, set := range session.Sets {
			if seen[set.TemplateID] {
				continue
			}
			seen[set.TemplateID] = true
			ids = append(ids, set.TemplateID)
		}
		ws.SetDay(day, ids)
	}
	return ws
}

// WorkoutPlan is owned 1:1 by a member. Exercises is a snapshot of the
// template catalog taken when the plan was last saved.
type WorkoutPlan struct {
	ID             string             `json:"id"`
	MemberID       string             `json:"member_id"`
	Goals          []FitnessGoal      `json:"goals"`
	Exercises      []ExerciseTemplate `json:"exercises"`
	WeeklySchedule WeeklySchedule     `json:"weekly_schedule"`
	Program        *WorkoutProgram    `json:"program,omitempty"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}
