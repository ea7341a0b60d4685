package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spaceworld/console/internal/actions"
	"github.com/spaceworld/console/internal/app"
	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/ui"
	"github.com/spaceworld/console/internal/ui/style"
	"github.com/spaceworld/console/internal/ui/terminal"
	"github.com/spaceworld/console/internal/usage"
)

const usageLine = "usage: sw [--plain] [--no-color] [--theme=<name>] [--version] [--help]"

// knownFlags maps each accepted flag to whether it takes a value.
var knownFlags = map[string]bool{
	"--plain":    false,
	"--no-color": false,
	"--theme":    true,
	"--version":  false,
	"--help":     false,
	"-h":         false,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rawFlags, rest := dispatchers.SplitFlags(args)
	if len(rest) > 0 {
		_, _ = fmt.Fprintln(stderr, usageLine)
		return 2
	}

	flags := dispatchers.NewParsedFlags(rawFlags)
	if err := validateFlags(flags); err != nil {
		return fail(stderr, err)
	}

	if flags.Has("--help") || flags.Has("-h") {
		_, _ = fmt.Fprintln(stdout, usageLine)
		return 0
	}
	if flags.Has("--version") {
		_, _ = fmt.Fprintf(stdout, "SpaceWorld Console v%s\n", actions.Version)
		return 0
	}

	theme := strings.ToLower(flags.String("--theme", ""))
	if theme != "" && !style.HasTheme(theme) {
		return fail(stderr, usage.UnknownTheme(theme))
	}

	opts := app.DefaultOptions()
	if flags.Has("--plain") || !terminal.IsInteractive() {
		opts.Plain = true
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")

	if theme != "" {
		if opts.StyleConfig == nil {
			opts.StyleConfig = map[string]string{}
		}
		opts.StyleConfig["theme"] = theme
	}

	application, err := app.New(opts)
	if err != nil {
		return fail(stderr, err)
	}

	result, err := app.Run(application, opts)
	_ = app.Close(application)
	if err != nil {
		return fail(stderr, err)
	}

	if result.Restart {
		if err := ui.Relaunch(args); err != nil {
			return fail(stderr, err)
		}
	}
	return 0
}

// validateFlags rejects unknown flags and flags missing their value.
func validateFlags(flags *dispatchers.ParsedFlags) error {
	for _, raw := range flags.Raw() {
		name, value, hasValue := strings.Cut(raw, "=")
		takesValue, ok := knownFlags[name]
		if !ok || takesValue != hasValue || (takesValue && value == "") {
			return usage.InvalidFlag(raw)
		}
	}
	return nil
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
