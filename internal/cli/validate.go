package cli

import (
	"fmt"

	"github.com/teamfit/teamfit/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	snap, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Validating records...")
	result := validation.New().Validate(snap)

	fmt.Println()
	fmt.Println(result.FormatReport())

	// Conflicts are reported, not errors.
	return nil
}

func loadSnapshot(ctx *Context) (validation.Snapshot, error) {
	var snap validation.Snapshot
	var err error
	if snap.Members, err = ctx.Store.Members(); err != nil {
		return snap, err
	}
	if snap.Logs, err = ctx.Store.WorkoutLogs(); err != nil {
		return snap, err
	}
	if snap.Goals, err = ctx.Store.Goals(); err != nil {
		return snap, err
	}
	if snap.Challenges, err = ctx.Store.Challenges(); err != nil {
		return snap, err
	}
	if snap.Templates, err = ctx.Store.ExerciseTemplates(); err != nil {
		return snap, err
	}
	return snap, nil
}
