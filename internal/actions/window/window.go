package window

import (
	"fmt"
	"strconv"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/usage"
)

// Banner is printed after the display has been cleared.
var Banner = []string{
	"SpaceWorld [Version 1.0.0]",
	"(c) Binobinos official. All rights reserved.",
}

func Clear(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		deps.Shell.Clear()
		for _, line := range Banner {
			call.Out.Append(line, domain.ToneDefault)
		}
		return nil
	}
}

func Exit(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		deps.Shell.Exit()
		return nil
	}
}

func Restart(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		call.Out.Append("Restarting application...", domain.ToneSuccess)
		if err := deps.Shell.Restart(); err != nil {
			return usage.ActionFailed(err)
		}
		return nil
	}
}

func Maximize(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		deps.Shell.Maximize()
		return nil
	}
}

func Minimize(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		deps.Shell.Minimize()
		return nil
	}
}

func Settings(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		if err := call.ExpectNoArgs(); err != nil {
			return err
		}
		if err := deps.Shell.ShowSettings(); err != nil {
			return usage.ActionFailed(err)
		}
		return nil
	}
}

// Resize handles "resize <width> <height>".
func Resize(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		return resize(call, deps)
	}
}

func resize(call dispatchers.Call, deps Deps) error {
	if len(call.Args) != 2 {
		return usage.IncorrectArguments(call.Node.Usage)
	}

	width, werr := strconv.Atoi(call.Args[0])
	height, herr := strconv.Atoi(call.Args[1])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return usage.InvalidNumber("Invalid width or height. Please enter numbers.")
	}

	if err := deps.Shell.Resize(width, height); err != nil {
		return usage.ActionFailed(err)
	}

	if deps.Persist != nil {
		if err := deps.Persist("window_width", call.Args[0]); err != nil {
			log.Warn("resize: could not save window_width: %v", err)
		}
		if err := deps.Persist("window_height", call.Args[1]); err != nil {
			log.Warn("resize: could not save window_height: %v", err)
		}
	}

	call.Out.Append(fmt.Sprintf("Window resized to %dx%d.", width, height), domain.ToneSuccess)
	return nil
}
