package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/teamfit/teamfit/internal/cli"
	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/errors"
	"github.com/teamfit/teamfit/internal/logger"
	"github.com/teamfit/teamfit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data path (.db for SQLite, directory for JSON collections)." type:"path" default:"${data_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize teamfit storage and seed the catalogs."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show the team dashboard."`
	Team      cli.TeamCmd      `cmd:"" help:"Show per-member team progress."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show workout statistics for a member."`
	Member    struct {
		Add    cli.MemberAddCmd    `cmd:"" help:"Add a team member."`
		List   cli.MemberListCmd   `cmd:"" help:"List all members."`
		Show   cli.MemberShowCmd   `cmd:"" help:"Show one member in detail."`
		Edit   cli.MemberEditCmd   `cmd:"" help:"Edit a member."`
		Delete cli.MemberDeleteCmd `cmd:"" help:"Delete a member (logs and goals are kept)."`
	} `cmd:"" help:"Manage team members."`
	Log struct {
		Add  cli.LogAddCmd  `cmd:"" help:"Log a workout."`
		List cli.LogListCmd `cmd:"" help:"List workout logs."`
	} `cmd:"" help:"Manage workout logs."`
	Goal struct {
		Add      cli.GoalAddCmd      `cmd:"" help:"Add a goal for a member."`
		List     cli.GoalListCmd     `cmd:"" help:"List goals."`
		Progress cli.GoalProgressCmd `cmd:"" help:"Update goal progress."`
	} `cmd:"" help:"Manage goals."`
	Challenge struct {
		List     cli.ChallengeListCmd     `cmd:"" help:"List the challenge catalog."`
		Join     cli.ChallengeJoinCmd     `cmd:"" help:"Join a challenge."`
		Progress cli.ChallengeProgressCmd `cmd:"" help:"Add challenge progress."`
		Complete cli.ChallengeCompleteCmd `cmd:"" help:"Mark a challenge as completed."`
	} `cmd:"" help:"Manage challenges."`
	Plan struct {
		Show   cli.PlanShowCmd   `cmd:"" help:"Show a member's weekly plan."`
		Add    cli.PlanAddCmd    `cmd:"" help:"Schedule an exercise on a weekday."`
		Remove cli.PlanRemoveCmd `cmd:"" help:"Remove an exercise from a weekday."`
		Save   cli.PlanSaveCmd   `cmd:"" help:"Save a member's program to the shared library."`
	} `cmd:"" help:"Manage workout plans."`
	Encourage struct {
		Send cli.EncourageSendCmd `cmd:"" help:"Send an encouragement."`
		List cli.EncourageListCmd `cmd:"" help:"List encouragements."`
	} `cmd:"" help:"Manage encouragements."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored records for inconsistencies."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health diagnostics."`
	Demo     cli.DemoCmd     `cmd:"" help:"Fill the store with demo data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Team fitness tracker for small groups"),
		kong.UsageOnError(),
		kong.Vars{
			"version":   constants.Version,
			"data_path": constants.DefaultDataPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Data),
	}); err != nil {
		errors.Fatal(err)
	}

	// A .db path gets the SQLite backend; anything else is a JSON
	// collection directory.
	var backend storage.Backend
	if strings.HasSuffix(CLI.Data, ".db") {
		backend = storage.NewSQLiteBackend(CLI.Data)
	} else {
		backend = storage.NewJSONBackend(CLI.Data)
	}
	store := storage.New(backend)

	appCtx := &cli.Context{Store: store}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
	if err := store.Close(); err != nil {
		logger.Warn("Failed to close storage", "error", err)
	}
	os.Exit(0)
}
