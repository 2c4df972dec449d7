package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/internal/showcase"
)

func newFormsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the available showcase forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range showcase.Names() {
				f, err := showcase.New(name, showcase.Options{})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %v\n", name, f.Fields())
			}
			return nil
		},
	}
}
