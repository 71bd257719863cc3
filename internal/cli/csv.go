package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexshd/tameshiwari"
	"github.com/alexshd/tameshiwari/internal/csvout"
	"github.com/alexshd/tameshiwari/internal/materialfile"
)

func csvCmd(materialsFile *string) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "csv",
		Short: "Write the full breaking matrix (all materials, pegged and unpegged) as CSV",
		RunE: func(*cobra.Command, []string) error {
			catalog := tameshiwari.DefaultCatalog()
			if *materialsFile != "" {
				var err error
				catalog, err = materialfile.Load(*materialsFile)
				if err != nil {
					return err
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := csvout.Write(f, tameshiwari.NewCalculator(catalog)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}

			slog.Info("breaking matrix written", "path", out, "materials", catalog.Len())
			return nil
		},
	}

	c.Flags().StringVar(&out, "out", "breaking_matrix.csv", "output file path")

	return c
}
