package dispatchers

import "github.com/stretchr/testify/require"

// newTestTree mirrors the console grammar closely enough for the resolver
// and dispatcher tests.
func newTestTree() *DispatchNode {
	root := Root(RootSpec{Name: "sw"})
	noop := func(Call) error { return nil }

	Command(CommandSpec{Name: "clear", Parent: root, Action: noop})
	Command(CommandSpec{Name: "echo", Parent: root, Action: noop})
	Command(CommandSpec{Name: "exit", Parent: root, Action: noop})
	Command(CommandSpec{Name: "config", Parent: root, Action: noop, CaseSensitive: true})
	Command(CommandSpec{
		Name:   "resize",
		Parent: root,
		Usage:  "resize <width> <height>",
		Args: []ArgSpec{
			{Name: "width", Required: true},
			{Name: "height", Required: true},
		},
		Action: noop,
	})

	theme := Command(CommandSpec{Name: "theme", Parent: root, Usage: "theme <name>", Action: noop})
	Register(theme, "dark")
	Register(theme, "light")

	sw := Group(GroupSpec{Name: "spaceworld", Parent: root, Usage: "spaceworld <command>"})
	file := Group(GroupSpec{Name: "file", Parent: sw, Usage: "spaceworld file <create|read|write|delete> ~<path>"})
	for _, name := range []string{"create", "read", "write"} {
		Command(CommandSpec{Name: name, Parent: file, Action: noop})
	}
	Command(CommandSpec{Name: "delete", Parent: file, Action: noop, Destructive: true})

	datatime := Group(GroupSpec{Name: "datatime", Parent: sw})
	Command(CommandSpec{Name: "time", Parent: datatime, Action: noop})

	dir := Group(GroupSpec{Name: "dir", Parent: sw})
	Command(CommandSpec{Name: "create", Parent: dir, Action: noop})
	Command(CommandSpec{Name: "delete", Parent: dir, Action: noop, Destructive: true})

	Command(CommandSpec{Name: "version", Parent: sw, Action: noop})

	return root
}

func walkPath(t require.TestingT, root *DispatchNode, path ...string) *DispatchNode {
	current := root
	for _, tok := range path {
		child, ok := current.Child(tok)
		require.True(t, ok, "missing %q in %v", tok, path)
		current = child
	}
	return current
}
