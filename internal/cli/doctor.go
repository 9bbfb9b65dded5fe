package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"
	"github.com/teamfit/teamfit/internal/backup"
	"github.com/teamfit/teamfit/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: catalogs seeded
	if storageReachable {
		if err := checkCatalogsSeeded(ctx); err != nil {
			fmt.Printf("❌ Catalogs seeded: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Catalogs seeded: OK\n")
		}
	} else {
		fmt.Printf("⊘ Catalogs seeded: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: record validation
	if storageReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Record validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Record validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Record validation: SKIPPED (storage not reachable)\n")
	}

	// Check 5: concurrent processes (warning only). Writes are whole
	// collection, last writer wins, so two processes can clobber each
	// other silently.
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	return nil
}

func checkCatalogsSeeded(ctx *Context) error {
	templates, err := ctx.Store.ExerciseTemplates()
	if err != nil {
		return fmt.Errorf("failed to read exercise catalog: %w", err)
	}
	if len(templates) == 0 {
		return fmt.Errorf("exercise catalog is empty")
	}
	challenges, err := ctx.Store.Challenges()
	if err != nil {
		return fmt.Errorf("failed to read challenge catalog: %w", err)
	}
	if len(challenges) == 0 {
		return fmt.Errorf("challenge catalog is empty")
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'teamfit backup create'")
	}
	return nil
}

func checkValidation(ctx *Context) error {
	snap, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}
	result := validation.New().Validate(snap)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts found - run 'teamfit validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkConcurrentProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := filepath.Base(os.Args[0])
	count := 0
	for _, p := range processes {
		name := p.Executable()
		if strings.TrimSuffix(name, ".exe") == strings.TrimSuffix(self, ".exe") {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%d %s processes running - concurrent writes can overwrite each other", count, self)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
