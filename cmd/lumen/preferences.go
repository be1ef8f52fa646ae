package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/lumen/internal/cli"
	"github.com/spf13/cobra"
)

func preferencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "preferences",
		Aliases: []string{"prefs"},
		Short:   "List saved preferences",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			prefs, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = prefs.Close() }()

			saved, err := prefs.ListPreferences(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list preferences: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(saved) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("No saved preferences."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Key"),
				cli.TableHeaderStyle.Render("Value"),
				cli.TableHeaderStyle.Render("Updated"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 12),
				strings.Repeat("-", 10),
				strings.Repeat("-", 16))

			for _, p := range saved {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.Value, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
