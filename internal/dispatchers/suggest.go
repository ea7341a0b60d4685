package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

const maxSuggestionDistance = 3

// editDistance is the Levenshtein distance between a and b over runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// tokenDistance compares a typed token with a child the way the child
// matches tokens: exactly when it is case-sensitive, ignoring case otherwise.
func tokenDistance(token string, child *DispatchNode) int {
	if child.CaseSensitive {
		return editDistance(token, child.Name)
	}
	return editDistance(strings.ToLower(token), strings.ToLower(child.Name))
}

// FindSimilarCommands lists up to maxResults children of node close to
// input, nearest first and then by name. A token that already matches a
// child is not a suggestion for it.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	var found []candidate
	for _, key := range node.order {
		child := node.Children[key]
		if d := tokenDistance(input, child); d > 0 && d <= maxSuggestionDistance {
			found = append(found, candidate{name: child.Name, distance: d})
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), strings.Compare(a.name, b.name))
	})

	names := make([]string, 0, min(len(found), maxResults))
	for _, c := range found[:min(len(found), maxResults)] {
		names = append(names, c.name)
	}
	return names
}

// Walk visits every node below node depth-first in registration order.
func Walk(node *DispatchNode, fn func(n *DispatchNode)) {
	if node == nil {
		return
	}
	for _, key := range node.order {
		child := node.Children[key]
		fn(child)
		Walk(child, fn)
	}
}
