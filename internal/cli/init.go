package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized teamfit storage at: %s\n", ctx.Store.Path())
	fmt.Println("Seeded the exercise and challenge catalogs.")
	return nil
}
