package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"

	"github.com/spaceworld/console/internal/usage"
)

// setupTempHome points HOME at a fresh directory for the test.
func setupTempHome(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	return tempHome
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".swrc"), []byte(content), 0600))
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{
			name:         "single line",
			setupContent: "theme=light\n",
			wantLines:    []string{"theme=light"},
		},
		{
			name:         "comments are kept",
			setupContent: "# mine\ntheme=light\n",
			wantLines:    []string{"# mine", "theme=light"},
		},
		{
			name:         "Windows CRLF line endings",
			setupContent: "theme=light\r\nplain=true\r\n",
			wantLines:    []string{"theme=light", "plain=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			writeConfig(t, home, tt.setupContent)

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(filepath.Join(home, ".swrc"))
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_SeedsNewFile(t *testing.T) {
	home := setupTempHome(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	content, err := os.ReadFile(filepath.Join(home, ".swrc"))
	require.NoError(t, err)
	require.Contains(t, string(content), "theme=dark")
	require.Contains(t, string(content), "# color_error=")
	require.Contains(t, string(content), "\n# Display\ntheme=dark\n")
	require.Contains(t, string(content), "\n# Color Overrides\n")
	require.NotContains(t, string(content), "last_session")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg["theme"])
}

func TestWriteLines_Overwrites(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=dark\n")

	require.NoError(t, WriteLines([]string{"theme=blue", "plain=true"}))

	content, err := os.ReadFile(filepath.Join(home, ".swrc"))
	require.NoError(t, err)
	require.Equal(t, "theme=blue\nplain=true\n", string(content))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), ".swrc.tmp."), "temp file left behind: %s", e.Name())
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		key   string
		value string
		want  []string
	}{
		{
			name:  "update existing",
			lines: []string{"theme=dark", "plain=false"},
			key:   "theme",
			value: "light",
			want:  []string{"theme=light", "plain=false"},
		},
		{
			name:  "append new",
			lines: []string{"theme=dark"},
			key:   "window_width",
			value: "120",
			want:  []string{"theme=dark", "window_width=120"},
		},
		{
			name:  "inline comment preserved",
			lines: []string{"theme=dark # night"},
			key:   "theme",
			value: "mono",
			want:  []string{"theme=mono # night"},
		},
		{
			name:  "commented entry with a value is left alone",
			lines: []string{"# theme=dark"},
			key:   "theme",
			value: "blue",
			want:  []string{"# theme=dark", "theme=blue"},
		},
		{
			name:  "placeholder is filled in",
			lines: []string{"# Color Overrides", "# color_error=", "# color_info="},
			key:   "color_error",
			value: "196",
			want:  []string{"# Color Overrides", "color_error=196", "# color_info="},
		},
		{
			name:  "later duplicates are dropped",
			lines: []string{"theme=dark", "plain=true", "theme=blue"},
			key:   "theme",
			value: "mono",
			want:  []string{"theme=mono", "plain=true"},
		},
		{
			name:  "value that would be cut is quoted",
			lines: []string{},
			key:   "speedtest_server",
			value: "a #1",
			want:  []string{`speedtest_server="a #1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Set(tt.lines, tt.key, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			cfg, err := Parse(got)
			require.NoError(t, err)
			require.Equal(t, tt.value, cfg[tt.key])
		})
	}
}

func TestSet_UnknownKey(t *testing.T) {
	_, err := Set([]string{"theme=dark"}, "volume", "11")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}

func TestUnset(t *testing.T) {
	got, err := Unset([]string{"# header", "theme=dark", "plain=true", "theme=blue"}, "theme")
	require.NoError(t, err)
	require.Equal(t, []string{"# header", "plain=true"}, got)

	got, err = Unset([]string{"plain=true"}, "theme")
	require.NoError(t, err)
	require.Equal(t, []string{"plain=true"}, got)

	_, err = Unset([]string{"plain=true"}, "volume")
	require.Error(t, err)
}

func TestUnset_OptionalKeyGetsPlaceholderBack(t *testing.T) {
	got, err := Unset([]string{"plain=true", "color_error=196"}, "color_error")
	require.NoError(t, err)
	require.Equal(t, []string{"plain=true", "# color_error="}, got)

	got, err = Unset([]string{"# color_error=", "color_error=196"}, "color_error")
	require.NoError(t, err)
	require.Equal(t, []string{"# color_error="}, got)
}

func TestWithLock_TimesOutNamingHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".swrc.lock")
	require.NoError(t, os.WriteFile(path, []byte("4242"), 0600))

	_, err := acquireLock(path, 120*time.Millisecond)

	require.ErrorIs(t, err, ErrLockTimeout)
	require.ErrorContains(t, err, "held by pid 4242")
}

func TestWithLock_BreaksStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".swrc.lock")
	require.NoError(t, os.WriteFile(path, []byte("4242"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	lock, err := acquireLock(path, 120*time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	lock.release()
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestWithLock_ErrorFromFn(t *testing.T) {
	home := setupTempHome(t)

	err := WithLock(func() error { return os.ErrInvalid })

	require.ErrorIs(t, err, os.ErrInvalid)
	_, statErr := os.Stat(filepath.Join(home, ".swrc.lock"))
	require.True(t, os.IsNotExist(statErr))
}

func TestGet(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=blue\nwindow_width=140\n")

	value, ok := Get("theme")
	require.True(t, ok)
	require.Equal(t, "blue", value)

	value, ok = Get("window_height")
	require.True(t, ok)
	require.Equal(t, "30", value)

	_, ok = Get("no_such_key")
	require.False(t, ok)
}

func TestGet_BrokenFileFallsBackToDefaults(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "this is not a config\n")

	value, ok := Get("theme")
	require.True(t, ok)
	require.Equal(t, "dark", value)

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "dark", all["theme"])
}

func TestGetAll_MergesCorrectly(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=light\ncustom=kept\n")

	all, err := GetAll()
	require.NoError(t, err)

	require.Equal(t, "light", all["theme"])
	require.Equal(t, "kept", all["custom"])
	require.Equal(t, "24h", all["display_time"])
	require.Equal(t, "500", all["history_limit"])
}

func TestProvider_SetAndUnset(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=dark\n")
	p := NewProvider()

	require.NoError(t, p.Set("theme", "contrast"))
	value, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "contrast", value)

	require.NoError(t, p.Unset("theme"))
	value, _ = p.Get("theme")
	require.Equal(t, "dark", value)

	_, err := os.Stat(filepath.Join(home, ".swrc.lock"))
	require.True(t, os.IsNotExist(err), "lock file must be released")
}

func TestProvider_SetFillsSeededPlaceholder(t *testing.T) {
	home := setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("color_error", "196"))

	content, err := os.ReadFile(filepath.Join(home, ".swrc"))
	require.NoError(t, err)
	require.Contains(t, string(content), "\ncolor_error=196\n")
	require.NotContains(t, string(content), "# color_error=")
}

func TestProvider_RejectsUnknownKey(t *testing.T) {
	setupTempHome(t)
	p := NewProvider()

	err := p.Set("volume", "11")
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}
