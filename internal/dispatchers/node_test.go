package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_RoundTrip(t *testing.T) {
	paths := [][]string{
		{"spaceworld", "file", "create"},
		{"spaceworld", "file", "delete"},
		{"spaceworld", "dir", "create"},
		{"spaceworld", "datatime", "week"},
		{"theme", "dark"},
		{"echo"},
	}

	root := Root(RootSpec{Name: "sw"})
	for _, p := range paths {
		Register(root, p...)
	}

	for _, p := range paths {
		node := walkPath(t, root, p...)
		require.Equal(t, p, node.Path)
	}
}

func TestRegister_Idempotent(t *testing.T) {
	root := Root(RootSpec{Name: "sw"})

	first := Register(root, "spaceworld", "file", "read")
	second := Register(root, "spaceworld", "file", "read")

	require.Same(t, first, second)
	require.Equal(t, []string{"spaceworld"}, root.ChildNames())
	require.Equal(t, []string{"read"}, walkPath(t, root, "spaceworld", "file").ChildNames())
}

func TestCommand_DuplicateKeepsOriginal(t *testing.T) {
	root := Root(RootSpec{Name: "sw"})
	first := Command(CommandSpec{Name: "echo", Parent: root, Summary: "first"})
	second := Command(CommandSpec{Name: "echo", Parent: root, Summary: "second", Destructive: true})

	require.Same(t, first, second)
	require.Equal(t, "first", second.Summary)
	require.False(t, second.Destructive)
}

func TestChild_CaseInsensitiveByDefault(t *testing.T) {
	root := newTestTree()

	node, ok := root.Child("SpaceWorld")
	require.True(t, ok)
	require.Equal(t, "spaceworld", node.Name)

	_, ok = root.Child("ECHO")
	require.True(t, ok)

	_, ok = root.Child("spacewor")
	require.False(t, ok)
}

func TestChild_ConfigIsCaseSensitive(t *testing.T) {
	root := newTestTree()

	_, ok := root.Child("config")
	require.True(t, ok)

	for _, tok := range []string{"Config", "CONFIG", "conFig"} {
		_, ok := root.Child(tok)
		require.False(t, ok, tok)
	}
}

func TestChildNames_InsertionOrder(t *testing.T) {
	root := newTestTree()

	require.Equal(t,
		[]string{"clear", "echo", "exit", "config", "resize", "theme", "spaceworld"},
		root.ChildNames(),
	)
	require.Equal(t,
		[]string{"file", "datatime", "dir", "version"},
		walkPath(t, root, "spaceworld").ChildNames(),
	)
}

func TestNewNode_PathDoesNotAlias(t *testing.T) {
	root := Root(RootSpec{Name: "sw"})
	create := Register(root, "spaceworld", "file", "create")
	sibling := NewNode("delete", walkPath(t, root, "spaceworld", "file"), "", "", nil, nil)

	require.Equal(t, []string{"spaceworld", "file", "create"}, create.Path)
	require.Equal(t, []string{"spaceworld", "file", "delete"}, sibling.Path)
}

func TestClearChildren(t *testing.T) {
	root := newTestTree()
	theme := walkPath(t, root, "theme")

	theme.ClearChildren()
	require.True(t, theme.IsLeaf())
	require.Empty(t, theme.ChildNames())

	Register(theme, "mono")
	require.Equal(t, []string{"mono"}, theme.ChildNames())
}

func TestCall_ExpectNoArgs(t *testing.T) {
	require.NoError(t, Call{}.ExpectNoArgs())

	err := Call{Node: &DispatchNode{Usage: "clear"}, Args: []string{"now"}}.ExpectNoArgs()
	require.EqualError(t, err, "Incorrect arguments. Usage: clear")
}
