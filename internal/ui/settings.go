package ui

import (
	"fmt"

	"github.com/spaceworld/console/internal/domain"
)

// SettingsLines renders the visible configuration grouped by section, the
// way the settings view shows it.
func SettingsLines(cfg map[string]string) []string {
	bySection := domain.ConfigKeysBySection()

	var lines []string
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]

		var rows []string
		for _, key := range keys {
			value := cfg[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s = %s", key.Name, value))
		}
		if len(rows) == 0 {
			continue
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section)
		lines = append(lines, rows...)
	}
	return lines
}
