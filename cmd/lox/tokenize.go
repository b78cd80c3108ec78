package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/diag"
	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lox...",
	Short: "Tokenize Lox source files",
	Long:  `Tokenize breaks Lox source files down into their constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for multiple files (0 = all CPUs)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token runs for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiag := maxDiagnostics(cmd)

	if len(args) == 1 {
		return tokenizeOne(cmd, args[0], format, maxDiag)
	}
	return tokenizeMany(cmd, args, format, maxDiag)
}

func tokenizeOne(cmd *cobra.Command, path, format string, maxDiag int) error {
	useCache, _ := cmd.Flags().GetBool("cache")

	var result *driver.TokenizeResult
	if useCache {
		var err error
		result, err = tokenizeCached(path, maxDiag)
		if err != nil {
			return err
		}
	} else {
		var err error
		result, err = driver.Tokenize(path, maxDiag)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		result.Bag.Dedup()
		if err := renderDiags(cmd, result.Bag, result.FileSet, format); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	default:
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	}
}

// renderDiags matches the diagnostic rendering to the token format: json
// dumps keep stderr machine-readable too.
func renderDiags(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string) error {
	if format == "json" {
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	})
	return nil
}

// tokenizeCached consults the on-disk token cache before scanning. The key
// is the normalized content hash, so any edit is an automatic miss.
func tokenizeCached(path string, maxDiag int) (*driver.TokenizeResult, error) {
	cache, err := driver.OpenTokenCache("lox")
	if err != nil {
		// cache unavailable is not fatal; scan without it
		result, err := driver.Tokenize(path, maxDiag)
		if err != nil {
			return nil, fmt.Errorf("tokenization failed: %w", err)
		}
		return result, nil
	}

	result, _, err := driver.TokenizeCached(path, maxDiag, cache)
	if err != nil && result == nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: token cache write failed: %v\n", err)
	}
	return result, nil
}

func tokenizeMany(cmd *cobra.Command, paths []string, format string, maxDiag int) error {
	jobs, _ := cmd.Flags().GetInt("jobs")

	fileSet, results, err := driver.TokenizeAll(context.Background(), paths, jobs, maxDiag)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			res.Bag.Dedup()
			if err := renderDiags(cmd, res.Bag, fileSet, format); err != nil {
				return err
			}
		}

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		if len(res.Tokens) == 0 {
			continue
		}
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, fileSet); err != nil {
				return err
			}
		default:
			if err := diagfmt.FormatTokensJSON(os.Stdout, res.Tokens); err != nil {
				return err
			}
		}
	}
	return nil
}
