// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hariamoor-zz/todo-cli/internal/config"
	"github.com/hariamoor-zz/todo-cli/internal/export"
	"github.com/hariamoor-zz/todo-cli/internal/task"
	"github.com/hariamoor-zz/todo-cli/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := newLogger(cfg.Verbose)

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("missing command")
	}
	subcommand := remaining[0]
	subArgs := remaining[1:]

	// Execute the subcommand
	switch subcommand {
	case "print", "add", "rm", "modify":
		inst, err := parseInstruction(subcommand, subArgs)
		if err != nil {
			return err
		}
		return applyCommand(cfg, logger, inst)
	case "export":
		return exportCommand(cfg, logger, subArgs)
	case "tui":
		return tuiCommand(ctx, cfg, subArgs)
	case "version", "--version":
		return versionCommand()
	case "help", "--help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// parseInstruction maps one subcommand and its raw tokens to exactly one
// instruction. Missing arguments or a non-integer index is a parse error,
// never a silently wrong instruction.
func parseInstruction(name string, args []string) (task.Instruction, error) {
	switch name {
	case "print":
		if len(args) > 0 {
			return nil, fmt.Errorf("print takes no arguments, got %v", args)
		}
		return task.Print{}, nil
	case "add":
		if len(args) == 0 {
			return nil, fmt.Errorf("add requires the task text")
		}
		return task.Add{Text: strings.Join(args, " ")}, nil
	case "rm":
		if len(args) != 1 {
			return nil, fmt.Errorf("rm requires exactly one task index")
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return task.Remove{Index: index}, nil
	case "modify":
		if len(args) == 0 {
			return nil, fmt.Errorf("modify requires a task index")
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		fs := flag.NewFlagSet("todo modify", flag.ContinueOnError)
		text := fs.String("new", "", "Replacement task text")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}
		if len(fs.Args()) > 0 {
			return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
		seen := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "new" {
				seen = true
			}
		})
		if !seen {
			return nil, fmt.Errorf("modify requires -new with the replacement text")
		}
		return task.Modify{Index: index, Text: *text}, nil
	}
	return nil, fmt.Errorf("unknown command: %s", name)
}

// parseIndex parses a 1-based task index token. Range checking against the
// list happens in Apply; this only rejects tokens that are not positive
// integers.
func parseIndex(token string) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("task index must be a positive integer, got %q", token)
	}
	if index < 1 {
		return 0, fmt.Errorf("task index must be a positive integer, got %d", index)
	}
	return index, nil
}

// applyCommand loads the snapshot, applies one instruction, and saves the
// snapshot back. The save runs on every path after a successful load, so a
// successful mutation is always durably recorded; after a failed
// instruction the list is unmutated and the rewrite is a no-op.
func applyCommand(cfg *config.Config, logger *log.Logger, inst task.Instruction) error {
	list, err := task.LoadOrInit(cfg.TaskFile, cfg.Owner)
	if err != nil {
		return err
	}
	logger.Debug("loaded task file", "path", cfg.TaskFile, "tasks", list.Len())

	applyErr := list.Apply(inst, os.Stdout)

	if err := list.Save(cfg.TaskFile); err != nil {
		return errors.Join(applyErr, err)
	}
	logger.Debug("saved task file", "path", cfg.TaskFile, "tasks", list.Len())

	return applyErr
}

// exportCommand writes the current list to a file in the chosen format.
func exportCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("todo export", flag.ContinueOnError)
	format := fs.String("format", export.FormatJSON, "Export format (json|csv|pdf)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("export requires exactly one output path")
	}

	list, err := task.LoadOrInit(cfg.TaskFile, cfg.Owner)
	if err != nil {
		return err
	}

	f, err := os.Create(rest[0])
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.Write(list, *format, f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", *format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	logger.Debug("exported task file", "path", rest[0], "format", *format, "tasks", list.Len())
	return nil
}

// tuiCommand launches the read-only viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return ui.RunTUI(ctx, cfg.TaskFile, cfg.Owner)
}

func versionCommand() error {
	fmt.Printf("todo %s\n", Version)
	return nil
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Todo - A personal task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  print                        Print the current task list")
	fmt.Fprintln(w, "  add <text>...                Add a task")
	fmt.Fprintln(w, "  rm <index>                   Remove the task at the 1-based index")
	fmt.Fprintln(w, "  modify <index> -new <text>   Replace the task at the 1-based index")
	fmt.Fprintln(w, "  export [-format f] <path>    Export the list (json, csv, or pdf)")
	fmt.Fprintln(w, "  tui                          Open the interactive viewer")
	fmt.Fprintln(w, "  version                      Show version information")
	fmt.Fprintln(w, "  help                         Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
