package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/testutil"
	"github.com/spaceworld/console/internal/usage"
)

func testDeps(shell *testutil.Shell, saved map[string]string) Deps {
	return Deps{
		Shell: shell,
		Persist: func(key, value string) error {
			saved[key] = value
			return nil
		},
		HasTheme: func(name string) bool {
			return name == "dark" || name == "light"
		},
		ThemeNames: []string{"dark", "light"},
	}
}

func TestSet_Success(t *testing.T) {
	shell := &testutil.Shell{}
	saved := map[string]string{}
	sink := testutil.NewSink()

	err := Set(testDeps(shell, saved))(dispatchers.Call{Args: []string{"Light"}, Out: sink})

	require.NoError(t, err)
	require.Equal(t, "light", shell.Theme)
	require.Equal(t, "light", saved["theme"])
	require.Equal(t, testutil.Line{Text: "Theme changed to light.", Tone: domain.ToneSuccess}, sink.Last())
}

func TestSet_UnknownTheme(t *testing.T) {
	shell := &testutil.Shell{}
	saved := map[string]string{}

	err := setTheme(dispatchers.Call{Args: []string{"purple"}, Out: testutil.NewSink()}, testDeps(shell, saved))

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownTheme, ue.Kind)
	require.Empty(t, shell.Calls)
	require.Empty(t, saved)
}

func TestSet_WrongArity(t *testing.T) {
	shell := &testutil.Shell{}

	err := setTheme(dispatchers.Call{Args: []string{"dark", "light"}, Out: testutil.NewSink()}, testDeps(shell, map[string]string{}))

	require.EqualError(t, err, "Incorrect arguments. Usage: theme [dark/light]")
	require.Empty(t, shell.Calls)
}

func TestSet_ShellError(t *testing.T) {
	shell := &testutil.Shell{ThemeErr: errors.New("no colors")}
	saved := map[string]string{}

	err := setTheme(dispatchers.Call{Args: []string{"dark"}, Out: testutil.NewSink()}, testDeps(shell, saved))

	require.EqualError(t, err, "no colors")
	require.Empty(t, saved)
}

func TestSet_OnlyOfferedThemes(t *testing.T) {
	shell := &testutil.Shell{}
	saved := map[string]string{}
	node := dispatchers.Command(dispatchers.CommandSpec{Name: "theme"})
	dispatchers.Group(dispatchers.GroupSpec{Name: "light", Parent: node})

	err := setTheme(dispatchers.Call{Node: node, Args: []string{"dark"}, Out: testutil.NewSink()}, testDeps(shell, saved))

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownTheme, ue.Kind)

	err = setTheme(dispatchers.Call{Node: node, Args: []string{}, Out: testutil.NewSink()}, testDeps(shell, saved))
	require.EqualError(t, err, "Incorrect arguments. Usage: theme [light]")

	err = setTheme(dispatchers.Call{Node: node, Args: []string{"light"}, Out: testutil.NewSink()}, testDeps(shell, saved))
	require.NoError(t, err)
	require.Equal(t, "light", shell.Theme)
}

func TestUsageLine(t *testing.T) {
	require.Equal(t, "theme [dark/light/blue]", UsageLine([]string{"dark", "light", "blue"}))
}
