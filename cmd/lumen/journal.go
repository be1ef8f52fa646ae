package main

import (
	"time"

	"github.com/Veraticus/lumen/internal/config"
	"github.com/Veraticus/lumen/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Open the journal",
		Long: `Open the interactive journal. Press m to switch between personal and public
mode, n to write a new entry and ? for all key bindings. With --demo, Ctrl+L
in the editor checks in at a sample location.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			opts := []tui.Option{
				tui.WithDocument(sess.doc),
				tui.WithTheme(sess.cfg.Theme),
			}
			if sess.cfg.Demo {
				opts = append(opts,
					tui.WithEntries(tui.DemoEntries(time.Now())),
					tui.WithLocations(tui.DemoLocation(time.Now)),
				)
			}

			return tui.Run(sess.Context(cmd.Context()), opts...)
		},
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("demo", true, "show sample entries")
	_ = viper.BindPFlag(config.KeyTheme, cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag(config.KeyDemo, cmd.Flags().Lookup("demo"))

	return cmd
}
