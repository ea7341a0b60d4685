package paths

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	appDirName     = "spaceworld"
	configFileName = ".swrc"
	logFileName    = "sw.log"
	dbFileName     = "history.db"
)

// AppDataDir returns the application data directory for the log and the
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	return homedir.Dir()
}

// ConfigFilePath returns ~/.swrc.
func ConfigFilePath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/spaceworld/sw.log
//   - Linux: $XDG_CONFIG_HOME/spaceworld/sw.log or ~/.config/spaceworld/sw.log
//   - Windows: %AppData%\spaceworld\sw.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}

// DatabasePath returns the path of the persisted command history.
func DatabasePath() string {
	return filepath.Join(AppDataDir(), dbFileName)
}

// WorkingDir returns the current directory with the home prefix shortened
// to "~" for the prompt echo.
func WorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	home, err := HomeDir()
	if err != nil || home == "" {
		return wd
	}

	if wd == home {
		return "~"
	}
	if rel, err := filepath.Rel(home, wd); err == nil && !filepath.IsAbs(rel) && rel != ".." && !hasDotDotPrefix(rel) {
		return "~" + string(filepath.Separator) + rel
	}
	return wd
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
