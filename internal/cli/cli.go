package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/taqueria/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.DefaultConfig()

	flagSet := flag.NewFlagSet("taqueria", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Taqueria - take an order item by item and keep a running total.

Usage:
  taqueria [options] [MENU_PATH]

Enter one item per line. End the order with end-of-input (Ctrl-D).

Arguments:
  MENU_PATH
    Optional path to an HCL menu file. The built-in menu is used otherwise.

Options:
`)
		flagSet.PrintDefaults()
	}

	menuFlag := flagSet.String("menu", "", "Path to an HCL menu file.")
	mFlag := flagSet.String("m", "", "Path to an HCL menu file (shorthand).")
	promptFlag := flagSet.String("prompt", defaults.Prompt, "Prompt written before each item is read.")
	receiptFlag := flagSet.Bool("receipt", false, "Print an itemised receipt when the order ends.")
	listFlag := flagSet.Bool("list", false, "Print the menu and exit.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	var sources []string
	for _, p := range []string{*menuFlag, *mFlag, flagSet.Arg(0)} {
		if p != "" {
			sources = append(sources, p)
		}
	}
	if len(sources) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("menu given more than once (%s): use one of -menu, -m or MENU_PATH", strings.Join(sources, ", "))}
	}
	path := ""
	if len(sources) == 1 {
		path = sources[0]
	}
	slog.Debug("Menu path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		MenuPath:  path,
		Prompt:    *promptFlag,
		Receipt:   *receiptFlag,
		ListMenu:  *listFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
