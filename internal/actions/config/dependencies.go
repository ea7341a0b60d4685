package config

import (
	"github.com/spaceworld/console/internal/config"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(key, value string) error
	Unset  func(key string) error
}

func DefaultDeps() Deps {
	provider := config.NewProvider()
	return Deps{
		Get:    provider.Get,
		GetAll: provider.GetAll,
		Set:    provider.Set,
		Unset:  provider.Unset,
	}
}
