package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/usage"
)

// Set handles "theme <name>". The shell applies the theme and the choice is
// saved so the next session starts with it.
func Set(deps Deps) dispatchers.CommandFunc {
	return func(call dispatchers.Call) error {
		return setTheme(call, deps)
	}
}

func setTheme(call dispatchers.Call, deps Deps) error {
	offered := offeredThemes(call, deps)
	if len(call.Args) != 1 {
		return usage.IncorrectArguments(UsageLine(offered))
	}

	name := strings.ToLower(call.Args[0])
	if !deps.HasTheme(name) || !slices.Contains(offered, name) {
		return usage.UnknownTheme(name)
	}

	if err := deps.Shell.ApplyTheme(name); err != nil {
		return usage.ActionFailed(err)
	}

	if deps.Persist != nil {
		if err := deps.Persist("theme", name); err != nil {
			log.Warn("theme: could not save theme: %v", err)
		}
	}

	call.Out.Append(fmt.Sprintf("Theme changed to %s.", name), domain.ToneSuccess)
	return nil
}

// offeredThemes lists the names registered below the theme verb, which may
// be a subset of the built-in themes.
func offeredThemes(call dispatchers.Call, deps Deps) []string {
	if call.Node != nil && !call.Node.IsLeaf() {
		return call.Node.ChildNames()
	}
	return deps.ThemeNames
}

// UsageLine renders "theme [dark/light/blue]" for the given names.
func UsageLine(names []string) string {
	return "theme [" + strings.Join(names, "/") + "]"
}
