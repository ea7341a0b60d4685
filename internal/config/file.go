package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/paths"
)

// ReadLines returns the raw lines of ~/.swrc. A missing or empty file is
// seeded with every visible key first.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if len(data) == 0 {
		lines := seedLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
		return lines, nil
	}

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), nil
}

// seedLines lays out the visible keys by settings section. Optional keys
// start as "# key=" placeholders.
func seedLines() []string {
	lines := []string{
		"# SpaceWorld console configuration",
		"# Edit values below; run 'config' in the console to see the merged result",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}

		lines = append(lines, "", "# "+section)
		for _, key := range keys {
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			lines = append(lines, key.Name+"="+formatValue(key.Default))
		}
	}
	return lines
}

// WriteLines replaces ~/.swrc through a temp file in the same directory and
// a rename.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), ".swrc.tmp.*")
	if err != nil {
		return fmt.Errorf("config: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := writeAndClose(tmp, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("config: write %s: %w", tmpPath, err)
	}

	return os.Rename(tmpPath, configPath)
}

func writeAndClose(f *os.File, content string) error {
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
