package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/teamfit/teamfit/internal/backup"
	apperrors "github.com/teamfit/teamfit/internal/errors"
	"github.com/teamfit/teamfit/internal/logger"
	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/storage"
)

type Context struct {
	Store *storage.Store
}

// PerformAutomaticBackup takes a best-effort backup, used on TUI startup.
// Failures are logged, never surfaced.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.Path())
	path, err := mgr.CreateBackup()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	logger.Debug("Automatic backup created", "backup", filepath.Base(path))
}

// resolveMember finds a member by ID or by exact name. Name matching is
// case-insensitive and must be unambiguous.
func resolveMember(ctx *Context, ref string) (models.Member, error) {
	member, found, err := ctx.Store.Member(ref)
	if err != nil {
		return models.Member{}, err
	}
	if found {
		return member, nil
	}

	members, err := ctx.Store.Members()
	if err != nil {
		return models.Member{}, err
	}
	var matches []models.Member
	for _, m := range members {
		if strings.EqualFold(m.Name, ref) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return models.Member{}, apperrors.NotFound("member", ref)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return models.Member{}, fmt.Errorf("member name %q is ambiguous (IDs: %s)", ref, strings.Join(ids, ", "))
	}
}

// parseFitnessGoals parses a comma-separated fitness goal list.
func parseFitnessGoals(s string) ([]models.FitnessGoal, error) {
	if s == "" {
		return nil, nil
	}
	var goals []models.FitnessGoal
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		goal, ok := models.ParseFitnessGoal(part)
		if !ok {
			return nil, fmt.Errorf("invalid fitness goal: %s", part)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

func formatGoalList(goals []models.FitnessGoal) string {
	if len(goals) == 0 {
		return "-"
	}
	var parts []string
	for _, g := range goals {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}
