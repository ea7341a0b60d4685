package style

import (
	"os"
	"strings"
)

// ColorConfig holds all configurable colors for one theme.
// Values are ANSI color numbers (0-255), hex colors, or "bold".
type ColorConfig struct {
	Text       string
	Background string
	Panel      string // output pane
	Input      string // input line
	Border     string
	Success    string
	Warning    string
	Error      string
	Info       string
	Muted      string
	Prompt     string
}

// ThemeNames lists the built-in themes in display order. They populate the
// grammar below the theme verb.
var ThemeNames = []string{
	"dark",
	"light",
	"blue",
	"contrast",
	"mono",
}

const DefaultTheme = "dark"

// Themes contains the built-in color themes.
// Dark themes use bright accents, light themes use dark saturated ones.
var Themes = map[string]ColorConfig{
	"dark": {
		Text:       "#ffffff",
		Background: "#2d2d2d",
		Panel:      "#1e1e1e",
		Input:      "#252526",
		Border:     "#555555",
		Success:    "10",  // bright green
		Warning:    "11",  // bright yellow
		Error:      "9",   // bright red
		Info:       "75",  // soft blue
		Muted:      "245", // medium gray
		Prompt:     "79",  // teal
	},

	"light": {
		Text:       "#000000",
		Background: "#f0f0f0",
		Panel:      "#ffffff",
		Input:      "#f0f0f0",
		Border:     "#cccccc",
		Success:    "28",  // dark green
		Warning:    "130", // dark orange
		Error:      "124", // dark red
		Info:       "27",  // dark blue
		Muted:      "243", // medium-dark gray
		Prompt:     "30",  // dark cyan
	},

	"blue": {
		Text:       "#ffffff",
		Background: "#001f3f",
		Panel:      "#002b4d",
		Input:      "#003366",
		Border:     "#0059b3",
		Success:    "49",  // aquamarine
		Warning:    "221", // light gold
		Error:      "210", // salmon
		Info:       "117", // sky blue
		Muted:      "110", // steel blue
		Prompt:     "159", // pale cyan
	},

	// High contrast for low-vision use and poor projectors.
	"contrast": {
		Text:       "15",
		Background: "0",
		Panel:      "0",
		Input:      "0",
		Border:     "15",
		Success:    "46",  // pure green
		Warning:    "226", // pure yellow
		Error:      "196", // pure red
		Info:       "51",  // pure cyan
		Muted:      "250", // light gray
		Prompt:     "bold",
	},

	// No hues at all; tones differ by brightness only.
	"mono": {
		Text:       "252",
		Background: "235",
		Panel:      "234",
		Input:      "236",
		Border:     "240",
		Success:    "255",
		Warning:    "250",
		Error:      "bold",
		Info:       "252",
		Muted:      "242",
		Prompt:     "bold",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_prompt":  "Prompt",
}

// HasTheme reports whether name is a built-in theme.
func HasTheme(name string) bool {
	_, ok := Themes[strings.ToLower(name)]
	return ok
}

// ThemeList parses a comma separated list of theme names, keeping the known
// ones in the given order. An empty or fully unknown list yields ThemeNames.
func ThemeList(value string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || seen[name] || !HasTheme(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return ThemeNames
	}
	return names
}

// ResolveThemeName picks the theme to use at startup.
// Resolution priority:
// 1. SW_COLOR_THEME
// 2. theme from the config file
// 3. DefaultTheme
// Unknown names fall back to DefaultTheme.
func ResolveThemeName(cfg map[string]string) string {
	name := DefaultTheme
	if envTheme := os.Getenv("SW_COLOR_THEME"); envTheme != "" {
		name = envTheme
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		name = cfgTheme
	}

	name = strings.ToLower(name)
	if !HasTheme(name) {
		return DefaultTheme
	}
	return name
}

// LoadColorConfig returns the colors of themeName with per-color overrides
// from SW_COLOR_* variables and color_* config keys applied, env first.
func LoadColorConfig(themeName string, cfg map[string]string) ColorConfig {
	result, ok := Themes[strings.ToLower(themeName)]
	if !ok {
		result = Themes[DefaultTheme]
	}

	for configKey, fieldName := range colorConfigKeys {
		if envVal := os.Getenv("SW_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Prompt":
		c.Prompt = value
	}
}
