package config

import "github.com/spaceworld/console/internal/domain"

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set persists a configuration value. Unknown keys are rejected.
func (p *Provider) Set(key, value string) error {
	return edit(func(lines []string) ([]string, error) {
		return Set(lines, key, value)
	})
}

// Unset removes a configuration value so the default applies again.
func (p *Provider) Unset(key string) error {
	return edit(func(lines []string) ([]string, error) {
		return Unset(lines, key)
	})
}

// edit rewrites ~/.swrc under the lock.
func edit(change func([]string) ([]string, error)) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, err = change(lines)
		if err != nil {
			return err
		}
		return WriteLines(lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
