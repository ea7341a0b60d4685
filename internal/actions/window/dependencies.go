// Package window holds the verbs that act on the shell hosting the console:
// clear, exit, restart, maximize, minimize, resize and settings.
package window

import (
	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/domain"
)

type Deps struct {
	Shell domain.Shell
	// Persist stores a config value, as resize does with the window size.
	Persist func(key, value string) error
}

// DefaultDeps binds the actions to shell and to the user config file.
func DefaultDeps(shell domain.Shell) Deps {
	provider := config.NewProvider()
	return Deps{
		Shell:   shell,
		Persist: provider.Set,
	}
}
