package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/bullet/internal/cli"
	"github.com/studiowebux/bullet/internal/config"
	"github.com/studiowebux/bullet/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bullet",
	Short: "bullet - keyboard-driven shortcut launcher",
	Long: `bullet is a terminal launcher: type a short key sequence and the
matching shortcut (app, directory, file, or URL) opens via the OS
default handler.

Run without arguments to start the interactive search. Shortcuts are
read from <documents>/bullet/config.json (or .yaml/.toml).

Examples:
  bullet                 # interactive search
  bullet run ff          # launch the shortcut matching "ff" directly
  bullet list            # print configured shortcuts
  bullet init            # create a sample config
  bullet validate        # check the config for dead or duplicate aliases`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var runCmd = &cobra.Command{
	Use:   "run <query>",
	Short: "Resolve a query once and launch it, without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Run(args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print configured shortcuts grouped by kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(os.Stdout)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory with a sample config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init()
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Config initialized at: %s\n", path)
		fmt.Println("Edit it to add your shortcuts, then run 'bullet'.")
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config for unreachable entries and duplicate aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
}
