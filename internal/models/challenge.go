package models

import (
	"math"
	"time"
)

type ChallengeType string

const (
	ChallengeIndividual ChallengeType = "individual"
	ChallengeTeam       ChallengeType = "team"
)

// Challenge is a shared template members can join.
type Challenge struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	DurationDays  int           `json:"duration_days"`
	TargetPerWeek int           `json:"target_per_week"`
	Type          ChallengeType `json:"type"`
}

// ChallengeParticipation is one member's attempt at a challenge. It lives
// embedded on the member record only.
type ChallengeParticipation struct {
	ChallengeID  string    `json:"challenge_id"`
	StartedAt    time.Time `json:"started_at"`
	ProgressDays int       `json:"progress_days"`
	Completed    bool      `json:"completed"`
}

// ProgressPercent returns completion as 0-100, capped at 100.
func (p ChallengeParticipation) ProgressPercent(durationDays int) int {
	if durationDays <= 0 {
		return 0
	}
	pct := int(math.Round(float64(p.ProgressDays) / float64(durationDays) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
