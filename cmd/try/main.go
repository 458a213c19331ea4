package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/try/internal/app"
	"github.com/kk-code-lab/try/internal/cli"
	"github.com/kk-code-lab/try/internal/config"
	"github.com/kk-code-lab/try/internal/shellsetup"
	"github.com/kk-code-lab/try/internal/ui/ansi"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ansi.Error(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newFlow(flagPath string) *cli.Flow {
	return &cli.Flow{
		BasePath: config.BasePath(flagPath),
		Fish:     shellsetup.IsFishShell(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Select:   apppkg.RunSelector,
	}
}

func newRootCmd() *cobra.Command {
	var flagPath string

	root := &cobra.Command{
		Use:           "try",
		Short:         "Interactive try-directory selector",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `try` behaves like `try cd` with an empty query.
			return newFlow(flagPath).RunCd("")
		},
	}
	root.PersistentFlags().StringVar(&flagPath, "path", "", "override base tries directory")

	// Stdout is reserved for shell-evaluable output, so help, usage,
	// version, and errors all go to stderr.
	root.SetOut(os.Stderr)
	root.SetErr(os.Stderr)

	cd := &cobra.Command{
		Use:   "cd [query...]",
		Short: "Pick or create a try directory; prints shell cd commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFlow(flagPath).RunCd(cli.BuildQuery(args))
		},
	}
	// Hyphen-leading query terms after the first word must not be parsed
	// as flags.
	cd.Flags().SetInterspersed(false)

	clone := &cobra.Command{
		Use:   "clone <git-uri> [name]",
		Short: "Clone a git repo into a date-prefixed try directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			return newFlow(flagPath).RunClone(args[0], name)
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Print the shell wrapper function to install",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			base := config.BasePath(flagPath)
			if flagPath == "" && len(args) > 0 {
				if expanded := config.ExpandHome(args[0]); filepath.IsAbs(expanded) {
					base = expanded
				}
			}
			exe, err := os.Executable()
			if err != nil {
				exe = "try"
			}
			shellsetup.PrintSetup(os.Stdout, "", exe, base, shellsetup.Config{})
		},
	}

	root.AddCommand(cd, clone, initCmd)
	return root
}
