package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/tameshiwari"
	"github.com/alexshd/tameshiwari/internal/materialfile"
	"github.com/alexshd/tameshiwari/internal/render"
)

func materialsCmd(materialsFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the resolved material catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := tameshiwari.DefaultCatalog()
			if *materialsFile != "" {
				var err error
				catalog, err = materialfile.Load(*materialsFile)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.DefaultTheme().Materials(catalog))
			return nil
		},
	}
}
