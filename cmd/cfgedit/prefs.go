package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/cfgedit/internal/config"
	"github.com/muurk/cfgedit/internal/ui"
)

var forceInit bool

func init() {
	prefsInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing preferences file without asking")

	prefsCmd.AddCommand(prefsPathCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsInitCmd)
	rootCmd.AddCommand(prefsCmd)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage the preferences file",
	Long: `Show or create the cfgedit preferences file.

Preferences set the defaults for output format, output shape, the alternate
screen, line filtering and logging. Command line flags always win.
Set CFGEDIT_CONFIG to use a different file.`,
}

var prefsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		prefs, err := config.LoadPreferences()
		if err != nil {
			return err
		}
		data, err := prefs.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var prefsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with the default values",
	RunE:  runPrefsInit,
}

func runPrefsInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path, err := config.WriteDefault(forceInit)
	if errors.Is(err, config.ErrExists) {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		ok := ui.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			"PREFERENCES FILE EXISTS",
			[]string{path, "Your current preferences will be replaced by the defaults"},
			"Overwrite?")
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Preferences left unchanged.")
			return nil
		}
		path, err = config.WriteDefault(true)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
