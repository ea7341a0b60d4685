package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/metrics"
	"github.com/spaceworld/console/internal/testutil"
	"github.com/spaceworld/console/internal/ui/style"
)

var testThemes = []string{"dark", "light", "blue"}

func testTree() *dispatchers.DispatchNode {
	return BuildTree(DefaultActions(&testutil.Shell{}, metrics.New()), testThemes)
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := testTree()

	require.NotNil(t, root)
	require.Equal(t, "sw", root.Name)
	require.Empty(t, root.Path)
}

func TestBuildTree_TopLevelOrder(t *testing.T) {
	root := testTree()

	require.Equal(t, []string{
		"clear", "echo", "exit", "restart", "maximize", "minimize", "settings",
		"resize", "theme", "config", "help", "spaceworld",
	}, root.ChildNames())
}

func TestBuildTree_SpaceworldSubtree(t *testing.T) {
	root := testTree()

	sw, ok := root.Child("spaceworld")
	require.True(t, ok)
	require.Equal(t, []string{
		"file", "datatime", "dir", "ip", "speedtest", "random", "version", "metrics",
	}, sw.ChildNames())

	file, _ := sw.Child("file")
	require.Equal(t, []string{"create", "read", "write", "delete"}, file.ChildNames())

	datatime, _ := sw.Child("datatime")
	require.Equal(t, []string{"time", "datatime", "data", "week", "year"}, datatime.ChildNames())

	dir, _ := sw.Child("dir")
	require.Equal(t, []string{"create", "delete"}, dir.ChildNames())
}

func TestBuildTree_ThemeChildren(t *testing.T) {
	root := testTree()

	themeNode, ok := root.Child("theme")
	require.True(t, ok)
	require.Equal(t, testThemes, themeNode.ChildNames())
	require.Equal(t, "theme [dark/light/blue]", themeNode.Usage)
}

func TestBuildTree_OnlyDeletesAreDestructive(t *testing.T) {
	root := testTree()

	var destructive []string
	dispatchers.Walk(root, func(n *dispatchers.DispatchNode) {
		if n.Destructive {
			destructive = append(destructive, n.CommandLine())
		}
	})

	require.Equal(t, []string{"spaceworld file delete", "spaceworld dir delete"}, destructive)
}

func TestBuildTree_ConfigIsCaseSensitive(t *testing.T) {
	root := testTree()

	_, ok := root.Child("config")
	require.True(t, ok)
	_, ok = root.Child("Config")
	require.False(t, ok)

	// Every other verb ignores case.
	_, ok = root.Child("CLEAR")
	require.True(t, ok)
}

func TestBuildTree_LeavesHaveActions(t *testing.T) {
	root := testTree()

	dispatchers.Walk(root, func(n *dispatchers.DispatchNode) {
		if !n.IsLeaf() {
			return
		}
		if len(n.Path) == 2 && n.Path[0] == "theme" {
			require.Nil(t, n.Action, "theme names are grammar only")
			return
		}
		require.NotNil(t, n.Action, "leaf %q has no action", n.CommandLine())
	})
}

func TestBuildTree_EveryPathRoundTrips(t *testing.T) {
	root := testTree()

	var lines []string
	dispatchers.Walk(root, func(n *dispatchers.DispatchNode) {
		lines = append(lines, n.CommandLine())
	})
	require.NotEmpty(t, lines)

	for _, line := range lines {
		current := root
		for _, tok := range dispatchers.ParseLine(line).Tokens {
			child, ok := current.Child(tok)
			require.True(t, ok, "lost %q while walking %q", tok, line)
			current = child
		}
		require.Equal(t, line, current.CommandLine())
	}
}

func TestBuildTree_CompletionFollowsRegistrationOrder(t *testing.T) {
	root := testTree()
	opts := dispatchers.DefaultResolveOptions()

	c := dispatchers.Resolve(root, "spac", opts)
	require.Equal(t, dispatchers.SingleCompletion, c.Kind)
	require.Equal(t, "spaceworld ", c.Line)

	c = dispatchers.Resolve(root, "spaceworld fi", opts)
	require.Equal(t, dispatchers.SingleCompletion, c.Kind)
	require.Equal(t, "spaceworld file ", c.Line)

	c = dispatchers.Resolve(root, "spaceworld d", opts)
	require.Equal(t, dispatchers.Ambiguous, c.Kind)
	require.Equal(t, []string{"datatime", "dir"}, c.Candidates)

	c = dispatchers.Resolve(root, "spaceworld datatime d", opts)
	require.Equal(t, dispatchers.Ambiguous, c.Kind)
	require.Equal(t, []string{"datatime", "data"}, c.Candidates)
}

func TestRebuildThemes(t *testing.T) {
	root := testTree()

	RebuildThemes(root, []string{"mono"})

	themeNode, _ := root.Child("theme")
	require.Equal(t, []string{"mono"}, themeNode.ChildNames())
	require.Equal(t, "theme [mono]", themeNode.Usage)
	require.NotNil(t, themeNode.Action)
}

func TestReloadThemes(t *testing.T) {
	root := testTree()
	saved := map[string]string{"themes": "mono, Blue, purple"}
	lookup := func(key string) (string, bool) {
		v, ok := saved[key]
		return v, ok
	}
	noop := func(dispatchers.Call) error { return nil }

	err := reloadThemes(noop, lookup)(dispatchers.Call{Root: root, Args: []string{"themes", "mono,blue"}})
	require.NoError(t, err)

	themeNode, _ := root.Child("theme")
	require.Equal(t, []string{"mono", "blue"}, themeNode.ChildNames())
	require.Equal(t, "theme [mono/blue]", themeNode.Usage)

	delete(saved, "themes")
	err = reloadThemes(noop, lookup)(dispatchers.Call{Root: root, Args: []string{"themes"}})
	require.NoError(t, err)
	require.Equal(t, style.ThemeNames, themeNode.ChildNames())
}

func TestReloadThemes_OtherKeysAndErrors(t *testing.T) {
	root := testTree()
	lookup := func(string) (string, bool) { return "mono", true }

	err := reloadThemes(func(dispatchers.Call) error { return nil }, lookup)(
		dispatchers.Call{Root: root, Args: []string{"display_time", "12h"}})
	require.NoError(t, err)
	themeNode, _ := root.Child("theme")
	require.Equal(t, testThemes, themeNode.ChildNames())

	failing := func(dispatchers.Call) error { return errors.New("locked") }
	err = reloadThemes(failing, lookup)(dispatchers.Call{Root: root, Args: []string{"themes", "mono"}})
	require.EqualError(t, err, "locked")
	require.Equal(t, testThemes, themeNode.ChildNames())
}

func TestRebuildThemes_NoThemeVerb(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{Name: "sw"})

	require.NotPanics(t, func() { RebuildThemes(root, []string{"dark"}) })
}
