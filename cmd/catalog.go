package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-leo/typefactory/furniture"
)

func newCatalogCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the type names a universe can be configured with",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := furniture.Names()
			if flags.json {
				e := &env{out: cmd.OutOrStdout()}
				return e.printJSON(names)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
