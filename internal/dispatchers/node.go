package dispatchers

import (
	"strings"

	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// Call is what a leaf action receives when its grammar path is dispatched.
type Call struct {
	Root *DispatchNode
	Node *DispatchNode
	Args []string
	Line ParsedLine
	Out  domain.OutputSink
}

type CommandFunc func(call Call) error

// ExpectNoArgs rejects trailing arguments given to a verb that takes none.
func (c Call) ExpectNoArgs() error {
	if len(c.Args) == 0 {
		return nil
	}
	usageLine := ""
	if c.Node != nil {
		usageLine = c.Node.Usage
	}
	return usage.IncorrectArguments(usageLine)
}

type Resolution struct {
	Node    *DispatchNode
	Args    []string
	Line    ParsedLine
	Execute CommandFunc
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

// DispatchNode is one token position in the command grammar.
//
// Children are keyed by the lowercase token; order keeps registration
// order so listings and ambiguous completions are deterministic.
type DispatchNode struct {
	Name     string
	Path     []string
	Summary  string
	Usage    string
	Args     []ArgSpec
	Children map[string]*DispatchNode
	Action   CommandFunc
	Category CommandCategory

	// CaseSensitive restricts matching of this node's token to its exact
	// spelling. Every other node matches case-insensitively.
	CaseSensitive bool

	// Destructive nodes are staged behind the confirmation gate instead
	// of being executed on dispatch.
	Destructive bool

	order []string
}

// Child returns the child matching token exactly.
func (n *DispatchNode) Child(token string) (*DispatchNode, bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.Children[strings.ToLower(token)]
	if !ok {
		return nil, false
	}
	if child.CaseSensitive && child.Name != token {
		return nil, false
	}
	return child, true
}

// ChildNames lists child tokens in registration order.
func (n *DispatchNode) ChildNames() []string {
	if n == nil {
		return nil
	}
	names := make([]string, 0, len(n.order))
	for _, key := range n.order {
		names = append(names, n.Children[key].Name)
	}
	return names
}

// ChildrenWithPrefix lists, in registration order, the child tokens that
// start with prefix. Prefix matching ignores case for every node, so
// completing "Con" offers the case-sensitive "config" spelled correctly.
func (n *DispatchNode) ChildrenWithPrefix(prefix string) []string {
	if n == nil {
		return nil
	}
	lower := strings.ToLower(prefix)

	var out []string
	for _, key := range n.order {
		if strings.HasPrefix(key, lower) {
			out = append(out, n.Children[key].Name)
		}
	}
	return out
}

// IsLeaf reports whether no further subcommand is expected after this node.
// Leaves may still take free-form arguments.
func (n *DispatchNode) IsLeaf() bool {
	return n == nil || len(n.Children) == 0
}

// ClearChildren drops the whole subtree below n.
func (n *DispatchNode) ClearChildren() {
	n.Children = make(map[string]*DispatchNode)
	n.order = nil
}

// CommandLine returns the node path joined by spaces.
func (n *DispatchNode) CommandLine() string {
	return strings.Join(n.Path, " ")
}
