package theme

import (
	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/ui/style"
)

type Deps struct {
	Shell      domain.Shell
	Persist    func(key, value string) error
	HasTheme   func(name string) bool
	ThemeNames []string
}

func themesSetting(p *config.Provider) string {
	value, _ := p.Get("themes")
	return value
}

func DefaultDeps(shell domain.Shell) Deps {
	provider := config.NewProvider()
	return Deps{
		Shell:      shell,
		Persist:    provider.Set,
		HasTheme:   style.HasTheme,
		ThemeNames: style.ThemeList(themesSetting(provider)),
	}
}
