package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/sqlstyle/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialectsCmd lists the registered dialects, marking the one in use.
func dialectsCmd(s *Settings) *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the keyword dialects",
		Action: func(_ context.Context, cmd *cli.Command) error {
			current, _ := dialect.Get(s.Config.Style.Dialect)
			for _, name := range dialect.Names() {
				d, _ := dialect.Get(name)

				marker := " "
				if d == current {
					marker = "*"
				}

				if _, err := fmt.Fprintf(cmd.Root().Writer, "%s %s\n", marker, name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
