package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/lumen/internal/activity"
	"github.com/Veraticus/lumen/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var classify bool

	cmd := &cobra.Command{
		Use:   "categories [identifier...]",
		Short: "List entry categories",
		Long: `List the categories an entry can be tagged with.

With --classify, each argument is resolved the way the journal resolves it.
Unrecognized identifiers are shown as notes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !classify {
				if len(args) > 0 {
					return fmt.Errorf("unexpected arguments %v (did you mean --classify?)", args)
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				defer w.Flush()

				fmt.Fprintf(w, "%s\t%s\t%s\n",
					cli.TableHeaderStyle.Render("Value"),
					cli.TableHeaderStyle.Render("Label"),
					cli.TableHeaderStyle.Render("Color"))
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					strings.Repeat("-", 17),
					strings.Repeat("-", 20),
					strings.Repeat("-", 7))

				for _, opt := range activity.Options() {
					fmt.Fprintf(w, "%s\t%s %s\t%s\n", opt.Value, opt.Icon, opt.Label, opt.Color)
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("--classify needs at least one identifier")
			}
			for _, arg := range args {
				cfg := activity.Classify(arg)
				line := fmt.Sprintf("%s -> %s (%s %s)", arg, cfg.Type, cfg.Icon, cfg.Label)
				if !activity.IsKnown(arg) {
					line += " " + cli.SubtleStyle.Render("[unrecognized]")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&classify, "classify", false, "resolve each argument to a category")

	return cmd
}
