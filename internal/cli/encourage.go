package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamfit/teamfit/internal/models"
)

type EncourageSendCmd struct {
	From    string `arg:"" help:"Sender member ID or name."`
	To      string `arg:"" help:"Recipient member ID or name."`
	Message string `arg:"" help:"Encouragement message."`
}

func (c *EncourageSendCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	from, err := resolveMember(ctx, c.From)
	if err != nil {
		return err
	}
	to, err := resolveMember(ctx, c.To)
	if err != nil {
		return err
	}

	e := models.Encouragement{
		ID:           uuid.New().String(),
		FromMemberID: from.ID,
		ToMemberID:   to.ID,
		Message:      c.Message,
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddEncouragement(e); err != nil {
		return err
	}

	fmt.Printf("Sent encouragement from %s to %s\n", from.Name, to.Name)
	return nil
}

type EncourageListCmd struct {
	Member string `arg:"" optional:"" help:"Recipient member ID or name; omit for all."`
}

func (c *EncourageListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var all []models.Encouragement
	var err error
	if c.Member == "" {
		all, err = ctx.Store.Encouragements()
	} else {
		var member models.Member
		member, err = resolveMember(ctx, c.Member)
		if err != nil {
			return err
		}
		all, err = ctx.Store.EncouragementsFor(member.ID)
	}
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No encouragements found")
		return nil
	}

	names := make(map[string]string)
	members, err := ctx.Store.Members()
	if err != nil {
		return err
	}
	for _, m := range members {
		names[m.ID] = m.Name
	}
	name := func(id string) string {
		if n := names[id]; n != "" {
			return n
		}
		return id
	}

	fmt.Println("Encouragements:")
	for i := len(all) - 1; i >= 0; i-- {
		e := all[i]
		fmt.Printf("  %s -> %s: %s\n", name(e.FromMemberID), name(e.ToMemberID), e.Message)
	}

	return nil
}
