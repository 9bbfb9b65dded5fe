package validation

import (
	"fmt"
	"time"

	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateMemberName    ConflictType = "duplicate_member_name"
	ConflictInvalidDate            ConflictType = "invalid_date"
	ConflictProgressOutOfRange     ConflictType = "progress_out_of_range"
	ConflictStatusProgressMismatch ConflictType = "status_progress_mismatch"
	ConflictOrphanedRecord         ConflictType = "orphaned_record"
	ConflictUnknownChallenge       ConflictType = "unknown_challenge"
	ConflictDuplicateParticipation ConflictType = "duplicate_participation"
	ConflictUnknownExercise        ConflictType = "unknown_exercise"
)

// Conflict represents a detected inconsistency in the stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Names of the records involved
	RecordIDs   []string // IDs of the records involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Snapshot is the full record set handed to the validator. Orphan checks
// need every collection at once, which is why the validator does not read
// the store itself.
type Snapshot struct {
	Members    []models.Member
	Logs       []models.WorkoutLog
	Goals      []models.Goal
	Challenges []models.Challenge
	Templates  []models.ExerciseTemplate
}

// Validator checks stored records for cross-collection inconsistencies
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check over the snapshot. Orphaned logs and goals are
// reported, not errors: member deletion deliberately leaves them behind.
func (v *Validator) Validate(snap Snapshot) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	memberIDs := make(map[string]string, len(snap.Members))
	nameCount := make(map[string][]string)
	for _, m := range snap.Members {
		memberIDs[m.ID] = m.Name
		if m.Name == "" {
			continue
		}
		nameCount[m.Name] = append(nameCount[m.Name], m.ID)
	}
	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateMemberName,
				Description: fmt.Sprintf("Duplicate member name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
				RecordIDs:   ids,
			})
		}
	}

	challengeIDs := make(map[string]struct{}, len(snap.Challenges))
	for _, c := range snap.Challenges {
		challengeIDs[c.ID] = struct{}{}
	}
	templateIDs := make(map[string]struct{}, len(snap.Templates))
	for _, t := range snap.Templates {
		templateIDs[t.ID] = struct{}{}
	}

	for _, m := range snap.Members {
		v.checkParticipations(m, challengeIDs, &result)
		v.checkPlan(m, templateIDs, &result)
	}

	for _, log := range snap.Logs {
		if !isValidDate(log.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Workout log %s has invalid date: %q", log.ID, log.Date),
				RecordIDs:   []string{log.ID},
			})
		}
		if _, ok := memberIDs[log.MemberID]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedRecord,
				Description: fmt.Sprintf("Workout log %s references missing member %s", log.ID, log.MemberID),
				RecordIDs:   []string{log.ID},
			})
		}
	}

	for _, g := range snap.Goals {
		if g.Progress < 0 || g.Progress > 100 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictProgressOutOfRange,
				Description: fmt.Sprintf("Goal %q has progress %d outside 0-100", g.Title, g.Progress),
				Items:       []string{g.Title},
				RecordIDs:   []string{g.ID},
			})
		} else if g.Status != models.GoalFailed && g.Status != models.DeriveGoalStatus(g.Progress) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictStatusProgressMismatch,
				Description: fmt.Sprintf("Goal %q is %s at %d%% progress", g.Title, g.Status, g.Progress),
				Items:       []string{g.Title},
				RecordIDs:   []string{g.ID},
			})
		}
		if g.TargetDate != "" && !isValidDate(g.TargetDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Goal %q has invalid target date: %q", g.Title, g.TargetDate),
				Items:       []string{g.Title},
				RecordIDs:   []string{g.ID},
			})
		}
		if _, ok := memberIDs[g.MemberID]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedRecord,
				Description: fmt.Sprintf("Goal %q references missing member %s", g.Title, g.MemberID),
				Items:       []string{g.Title},
				RecordIDs:   []string{g.ID},
			})
		}
	}

	return result
}

func (v *Validator) checkParticipations(m models.Member, challengeIDs map[string]struct{}, result *ValidationResult) {
	active := make(map[string]int)
	for _, p := range m.Challenges {
		if _, ok := challengeIDs[p.ChallengeID]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownChallenge,
				Description: fmt.Sprintf("Member %q participates in unknown challenge %s", m.Name, p.ChallengeID),
				Items:       []string{m.Name},
				RecordIDs:   []string{m.ID},
			})
		}
		if !p.Completed {
			active[p.ChallengeID]++
		}
	}
	for id, n := range active {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateParticipation,
				Description: fmt.Sprintf("Member %q has %d active participations in challenge %s", m.Name, n, id),
				Items:       []string{m.Name},
				RecordIDs:   []string{m.ID},
			})
		}
	}
}

func (v *Validator) checkPlan(m models.Member, templateIDs map[string]struct{}, result *ValidationResult) {
	if m.WorkoutPlan == nil || m.WorkoutPlan.Program == nil {
		return
	}
	for _, session := range m.WorkoutPlan.Program.Sessions {
		for _, set := range session.Sets {
			if _, ok := templateIDs[set.TemplateID]; !ok {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnknownExercise,
					Description: fmt.Sprintf("Member %q has a plan set referencing unknown exercise %s", m.Name, set.TemplateID),
					Items:       []string{m.Name},
					RecordIDs:   []string{m.ID},
				})
			}
		}
	}
}

func isValidDate(s string) bool {
	_, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	return err == nil
}
