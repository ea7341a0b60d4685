package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in the settings view (Display, Window, etc.)
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in the settings view and the seeded .swrc.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "theme",
		Default:     "dark",
		Description: "Color theme: dark, light, blue, contrast, mono",
		Section:     "Display",
	},
	{
		Name:        "themes",
		Default:     "",
		Description: "Themes offered by the theme command, comma separated (empty = all)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "display_date",
		Default:     "yyyy-mm-dd",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h, 24h",
		Section:     "Display",
	},
	{
		Name:        "plain",
		Default:     "false",
		Description: "Use the line-mode console instead of the full-screen one (true/false)",
		Section:     "Display",
	},
	// Window
	{
		Name:        "window_width",
		Default:     "100",
		Description: "Window width in cells, used by resize and restart",
		Section:     "Window",
	},
	{
		Name:        "window_height",
		Default:     "30",
		Description: "Window height in cells, used by resize and restart",
		Section:     "Window",
	},
	// History
	{
		Name:        "history_limit",
		Default:     "500",
		Description: "Number of past commands loaded at startup (0 = all)",
		Section:     "History",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Network
	{
		Name:        "speedtest_server",
		Default:     "",
		Description: "speedtest.net server id used by spaceworld speedtest (empty = nearest)",
		Section:     "Network",
		HideIfEmpty: true,
	},
	// Hidden (internal)
	{
		Name:        "last_session",
		Default:     "",
		Description: "Identifier of the last console session",
		Section:     "History",
		Hidden:      true,
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_prompt",
		Description: "Override prompt echo color from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// LookupConfigKey returns the definition of a key.
func LookupConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Display", "Window", "History", "Logging", "Network", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
