package dispatchers

import (
	"strings"

	"github.com/spaceworld/console/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch walks the tokens of line from root down to the deepest node that
// owns an action. Tokens past that node are returned as arguments.
func Dispatch(root *DispatchNode, line ParsedLine) (Resolution, error) {
	tokens := line.Tokens
	if len(tokens) == 0 {
		return Resolution{}, usage.IncorrectArguments("")
	}

	current := root
	var target *DispatchNode
	depth := 0

	for i, tok := range tokens {
		child, ok := current.Child(tok)
		if !ok {
			if target == nil || (current.Action == nil && !current.IsLeaf()) {
				return Resolution{}, unknownBelow(current, tokens[:i+1])
			}
			break
		}

		current = child
		if child.Action != nil {
			target = child
			depth = i + 1
		}
	}

	if target == nil {
		// Only grammar groups matched, like "spaceworld file".
		return Resolution{}, usage.IncorrectArguments(current.Usage)
	}

	args := tokens[depth:]
	if err := validateArgs(target, args); err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Node:    target,
		Args:    args,
		Line:    line,
		Execute: target.Action,
	}, nil
}

func unknownBelow(node *DispatchNode, tokens []string) error {
	last := tokens[len(tokens)-1]
	suggestions := FindSimilarCommands(last, node, defaultSuggestionsCount)
	return usage.UnknownCommand(strings.Join(tokens, " "), suggestions...)
}

func validateArgs(node *DispatchNode, args []string) error {
	required := 0
	for _, a := range node.Args {
		if a.Required {
			required++
		}
	}

	if len(args) < required {
		return usage.IncorrectArguments(node.Usage)
	}
	return nil
}
