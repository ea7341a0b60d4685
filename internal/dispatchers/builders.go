package dispatchers

import "strings"

// NewNode creates a node and attaches it to parent. Registering a token
// that parent already owns is a no-op and returns the existing node.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {
	node, _ := attach(name, parent, summary, usage, args, action)
	return node
}

func attach(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	args []ArgSpec,
	action CommandFunc,
) (*DispatchNode, bool) {
	key := strings.ToLower(name)

	if parent != nil {
		if existing, ok := parent.Children[key]; ok {
			return existing, false
		}
	}

	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Args:     args,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{}
		return node, true
	}

	path := make([]string, len(parent.Path), len(parent.Path)+1)
	copy(path, parent.Path)
	node.Path = append(path, name)

	parent.Children[key] = node
	parent.order = append(parent.order, key)

	return node, true
}

// Register inserts the chain of tokens below root, creating intermediate
// nodes as needed, and returns the last node. Repeating a path is a no-op.
func Register(root *DispatchNode, path ...string) *DispatchNode {
	current := root
	for _, tok := range path {
		current = NewNode(tok, current, "", "", nil, nil)
	}
	return current
}

func Root(spec RootSpec) *DispatchNode {
	root := NewNode(
		spec.Name,
		nil,
		spec.Summary,
		spec.Usage,
		nil,
		nil,
	)
	return root
}

func Group(spec GroupSpec) *DispatchNode {
	node, created := attach(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		nil,
		nil,
	)

	if created {
		node.Category = spec.Category
	}
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node, created := attach(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		spec.Args,
		spec.Action,
	)

	if created {
		node.Category = spec.Category
		node.CaseSensitive = spec.CaseSensitive
		node.Destructive = spec.Destructive
	}
	return node
}
