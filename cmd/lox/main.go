package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lox/internal/driver"
	"lox/internal/project"
	"lox/internal/version"
)

// Sysexits-style process statuses from the classic scanner driver.
const (
	exitUsage   = 64 // command line usage error
	exitDataErr = 65 // input contained lexical errors
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox scanner and frontend toolchain",
	Long:  `lox scans Lox source files into tokens and reports lexical diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// runRoot is classic file mode: `lox script.lox` scans the file and dumps
// its tokens; no argument prints usage and exits 64. Interactive use lives
// in the repl subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}

	hadError, err := driver.Run(args[0], maxDiagnostics(cmd), os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if hadError {
		os.Exit(exitDataErr)
	}
	return nil
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// config is the lox.toml found by walking up from the working directory,
// or the defaults when there is none.
func config() project.Config {
	wd, err := os.Getwd()
	if err != nil {
		return project.DefaultConfig()
	}
	cfg, path, _, err := project.FindConfig(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", path, err)
		return project.DefaultConfig()
	}
	return cfg
}

// maxDiagnostics resolves the flag over the config file value.
func maxDiagnostics(cmd *cobra.Command) int {
	if flags := cmd.Root().PersistentFlags(); flags.Changed("max-diagnostics") {
		if n, err := flags.GetInt("max-diagnostics"); err == nil && n > 0 {
			return n
		}
	}
	if n := config().Diagnostics.Max; n > 0 {
		return n
	}
	return 100
}

// useColor resolves --color / lox.toml / terminal detection for f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode := ""
	if flags := cmd.Root().PersistentFlags(); flags.Changed("color") {
		mode, _ = flags.GetString("color")
	}
	if mode == "" {
		mode = config().Diagnostics.Color
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
