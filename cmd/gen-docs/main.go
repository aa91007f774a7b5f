package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/timecalc/internal/cli"
)

// This small tool generates shell completions and a man page from the cobra
// command tree, so both stay in step with the real flags.

const (
	appName        = "timecalc"
	appDescription = "Worked time between two clock times, and totals of two durations, in the terminal."
)

func main() {
	root := cli.NewApp("dev").Root()

	if err := writeCompletions(root); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := writeMan(root); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func writeCompletions(root *cobra.Command) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	if err := root.GenBashCompletionFileV2(filepath.Join(base, appName+".bash"), true); err != nil {
		return fmt.Errorf("bash completion: %w", err)
	}
	if err := root.GenZshCompletionFile(filepath.Join(base, "_"+appName)); err != nil {
		return fmt.Errorf("zsh completion: %w", err)
	}
	if err := root.GenFishCompletionFile(filepath.Join(base, appName+".fish"), true); err != nil {
		return fmt.Errorf("fish completion: %w", err)
	}
	return nil
}

func writeMan(root *cobra.Command) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"" + appName + "\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " - " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[\\-m|\\-\\-mode diff|sum] [command] [flags]\n")
	b.WriteString(".SH DESCRIPTION\n" + escapeRoff(root.Long) + "\n")

	b.WriteString(".SH OPTIONS\n")
	writeFlags(&b, root.NonInheritedFlags())

	b.WriteString(".SH COMMANDS\n")
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		b.WriteString(".SS " + c.Name() + "\n" + escapeRoff(c.Short) + "\n")
		writeFlags(&b, c.LocalNonPersistentFlags())
	}

	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nOpen the interactive calculator.\n")
	b.WriteString(".TP\n\\fB" + appName + " diff --start 09:00 --end 17:30 --break 60\\fR\nWorked time 7h30m from an 8h30m stay.\n")
	b.WriteString(".TP\n\\fB" + appName + " sum 1:30 45\\fR\nTotal of 1h30m and 45 minutes.\n")
	b.WriteString(".SH FILES\n.TP\n~/.config/timecalc/config.toml\nBreak shortcuts and UI settings.\n")
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(b.String()), 0o644)
}

func writeFlags(b *strings.Builder, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		names := "\\-\\-" + f.Name
		if f.Shorthand != "" {
			names = "\\-" + f.Shorthand + ", " + names
		}
		if f.Value.Type() != "bool" {
			names += " <" + f.Value.Type() + ">"
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + escapeRoff(f.Usage) + "\n")
	})
}

func escapeRoff(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "-", "\\-")
	return s
}
