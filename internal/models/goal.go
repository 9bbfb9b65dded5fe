package models

type GoalType string

const (
	GoalWeight      GoalType = "weight"
	GoalFrequency   GoalType = "frequency"
	GoalPerformance GoalType = "performance"
	GoalHabit       GoalType = "habit"
)

// ParseGoalType validates a goal type value.
func ParseGoalType(s string) (GoalType, bool) {
	switch GoalType(s) {
	case GoalWeight, GoalFrequency, GoalPerformance, GoalHabit:
		return GoalType(s), true
	}
	return "", false
}

type GoalStatus string

const (
	GoalOngoing   GoalStatus = "ongoing"
	GoalCompleted GoalStatus = "completed"
	GoalFailed    GoalStatus = "failed"
)

// Goal is a member-scoped, progress-tracked target. Status is a derived view
// of Progress except for the explicit failed state; use Apply or
// SetProgress so the two never diverge.
type Goal struct {
	ID          string     `json:"id"`
	MemberID    string     `json:"member_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        GoalType   `json:"type"`
	TargetValue *float64   `json:"target_value,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	StartDate   string     `json:"start_date"`  // YYYY-MM-DD format
	TargetDate  string     `json:"target_date"` // YYYY-MM-DD format
	Progress    int        `json:"progress"`    // 0-100
	Status      GoalStatus `json:"status"`
}

// DeriveGoalStatus maps a progress percentage to its status.
func DeriveGoalStatus(progress int) GoalStatus {
	if progress >= 100 {
		return GoalCompleted
	}
	return GoalOngoing
}

// SetProgress clamps progress to 0-100 and recomputes the status.
func (g *Goal) SetProgress(progress int) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	g.Progress = progress
	g.Status = DeriveGoalStatus(progress)
}

// GoalPatch is a partial update; nil fields are left unchanged. Setting
// Progress recomputes Status; Status itself is only honored for the
// explicit failed override.
type GoalPatch struct {
	Title       *string
	Description *string
	TargetValue *float64
	Unit        *string
	TargetDate  *string
	Progress    *int
	Status      *GoalStatus
}

func (g *Goal) Apply(p GoalPatch) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetValue != nil {
		g.TargetValue = p.TargetValue
	}
	if p.Unit != nil {
		g.Unit = *p.Unit
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	if p.Progress != nil {
		g.SetProgress(*p.Progress)
	}
	if p.Status != nil && *p.Status == GoalFailed {
		g.Status = GoalFailed
	}
}
