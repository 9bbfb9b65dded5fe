package cli

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/teamfit/teamfit/internal/errors"
	"github.com/teamfit/teamfit/internal/models"
	"github.com/teamfit/teamfit/internal/storage"
)

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	challenges, err := ctx.Store.Challenges()
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Println("No challenges found")
		return nil
	}

	fmt.Println("Challenges:")
	for _, ch := range challenges {
		fmt.Printf("  %s (ID: %s)\n", ch.Title, ch.ID)
		fmt.Printf("      %s\n", ch.Description)
		fmt.Printf("      %d days, %dx per week, %s\n", ch.DurationDays, ch.TargetPerWeek, ch.Type)
	}

	return nil
}

type ChallengeJoinCmd struct {
	Member    string `arg:"" help:"Member ID or name."`
	Challenge string `arg:"" help:"Challenge ID."`
}

func (c *ChallengeJoinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	challenge, found, err := ctx.Store.Challenge(c.Challenge)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFound("challenge", c.Challenge)
	}

	participation := models.ChallengeParticipation{
		ChallengeID: challenge.ID,
		StartedAt:   time.Now(),
	}
	if err := ctx.Store.JoinChallenge(member.ID, participation); err != nil {
		if errors.Is(err, storage.ErrActiveParticipation) {
			return fmt.Errorf("%s is already participating in %q", member.Name, challenge.Title)
		}
		return err
	}

	fmt.Printf("%s joined challenge: %s\n", member.Name, challenge.Title)
	return nil
}

type ChallengeProgressCmd struct {
	Member    string `arg:"" help:"Member ID or name."`
	Challenge string `arg:"" help:"Challenge ID."`
	Days      int    `short:"d" help:"Days of progress to add." default:"1"`
}

func (c *ChallengeProgressCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	return nil
}

func (c *ChallengeProgressCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	challenge, found, err := ctx.Store.Challenge(c.Challenge)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFound("challenge", c.Challenge)
	}

	for i, p := range member.Challenges {
		if p.ChallengeID != challenge.ID || p.Completed {
			continue
		}
		p.ProgressDays += c.Days
		if p.ProgressDays > challenge.DurationDays {
			p.ProgressDays = challenge.DurationDays
		}
		member.Challenges[i] = p
		if err := ctx.Store.SetMemberChallenges(member.ID, member.Challenges); err != nil {
			return err
		}
		fmt.Printf("%s: %q at %d%% (%d/%d days)\n",
			member.Name, challenge.Title, p.ProgressPercent(challenge.DurationDays), p.ProgressDays, challenge.DurationDays)
		return nil
	}

	return fmt.Errorf("%s has no active participation in %q", member.Name, challenge.Title)
}

type ChallengeCompleteCmd struct {
	Member    string `arg:"" help:"Member ID or name."`
	Challenge string `arg:"" help:"Challenge ID."`
}

func (c *ChallengeCompleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}
	challenge, found, err := ctx.Store.Challenge(c.Challenge)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFound("challenge", c.Challenge)
	}

	for i, p := range member.Challenges {
		if p.ChallengeID != challenge.ID || p.Completed {
			continue
		}
		member.Challenges[i].Completed = true
		if err := ctx.Store.SetMemberChallenges(member.ID, member.Challenges); err != nil {
			return err
		}
		fmt.Printf("%s completed challenge: %s\n", member.Name, challenge.Title)
		return nil
	}

	return fmt.Errorf("%s has no active participation in %q", member.Name, challenge.Title)
}
