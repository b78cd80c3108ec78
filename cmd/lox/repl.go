package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"lox/internal/driver"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Scan Lox input interactively",
	Long:  `Repl reads one line at a time, prints its tokens, and reports lexical errors without stopping the session`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg := config()
	maxDiag := maxDiagnostics(cmd)

	fmt.Println("lox scanner. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, cfg.Repl.History)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	lineNo := 0
	for {
		code, err := ln.Prompt(cfg.Repl.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the current line, the session continues
			fmt.Println()
			continue
		}
		if err != nil {
			// Ctrl+D (io.EOF) and closed input both end the session cleanly
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		// a fresh bag per line: an error here never blocks the next line
		lineNo++
		driver.RunSource(fmt.Sprintf("repl:%d", lineNo), []byte(code), maxDiag, os.Stdout, os.Stderr)
		ln.AppendHistory(code)
	}
}
