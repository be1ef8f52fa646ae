package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/lumen/internal/cli"
	"github.com/Veraticus/lumen/internal/common"
	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/spf13/cobra"
)

func modeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the journal mode",
		Long: `Personal mode keeps entries to yourself. Public mode shows only what you have
shared with the group. The choice is remembered for the next session.`,
	}

	cmd.AddCommand(modeGetCmd())
	cmd.AddCommand(modeSetCmd())
	cmd.AddCommand(modeToggleCmd())
	cmd.AddCommand(modeResetCmd())

	return cmd
}

func modeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			fmt.Fprintln(cmd.OutOrStdout(), sess.store.Mode())
			return nil
		},
	}
}

func modeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <personal|public>",
		Short:     "Switch to the given mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.ModePersonal), string(model.ModePublic)},
		RunE: func(cmd *cobra.Command, args []string) error {
			next, ok := model.ParseMode(args[0])
			if !ok {
				return common.NewUserError(
					fmt.Sprintf("Unknown mode %q, expected personal or public", args[0]),
					mode.ErrInvalidMode,
				)
			}

			sess, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.SetMode(cmd.Context(), next); err != nil {
				return err
			}
			printMode(cmd.OutOrStdout(), sess.store)
			return nil
		},
	}
}

func modeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between personal and public",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.store.Toggle(cmd.Context())
			printMode(cmd.OutOrStdout(), sess.store)
			return nil
		},
	}
}

func modeResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved mode",
		Long:  `Remove the saved mode. The next session starts in personal mode.`,
		Args:  cobra.NoArgs,
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

			if err := prefs.DeletePreference(cmd.Context(), mode.PreferenceKey); err != nil {
				return fmt.Errorf("failed to reset mode: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				"Saved mode cleared, next session starts in "+cli.FormatMode(model.DefaultMode)+" mode"))
			return nil
		},
	}
}

func printMode(w io.Writer, store *mode.Store) {
	fmt.Fprintln(w, cli.FormatSuccess("Now in "+cli.FormatMode(store.Mode())+" mode"))
	if !store.Persistent() {
		fmt.Fprintln(w, cli.FormatWarning("This change only lasts until lumen exits."))
	}
}
