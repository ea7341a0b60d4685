package help

import (
	"strings"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// Show handles "help [command...]". Without arguments every runnable
// command is listed; with a command path only that subtree is.
func Show(call dispatchers.Call) error {
	return show(call, DefaultDeps())
}

func show(call dispatchers.Call, deps Deps) error {
	start := call.Root
	for i, tok := range call.Args {
		child, ok := start.Child(tok)
		if !ok {
			suggestions := dispatchers.FindSimilarCommands(tok, start, 3)
			return usage.UnknownCommand(strings.Join(call.Args[:i+1], " "), suggestions...)
		}
		start = child
	}

	if start != call.Root {
		call.Out.Append(start.Usage, domain.ToneInfo)
		if start.Summary != "" {
			call.Out.Append("  "+start.Summary, domain.ToneDefault)
		}
	}

	grouped := groupByCategory(start)
	for _, cat := range dispatchers.CategoryOrder() {
		nodes := grouped[cat]
		if len(nodes) == 0 {
			continue
		}

		tbl := deps.NewTable()
		for _, n := range nodes {
			tbl.AddRow("  "+n.Usage, n.Summary)
		}

		call.Out.Append("", domain.ToneDefault)
		call.Out.Append(cat.String()+":", domain.ToneInfo)
		call.Out.Append(tbl.String(), domain.ToneDefault)
	}

	return nil
}

// groupByCategory collects the runnable nodes below start, start included,
// keeping registration order inside each category.
func groupByCategory(start *dispatchers.DispatchNode) map[dispatchers.CommandCategory][]*dispatchers.DispatchNode {
	grouped := make(map[dispatchers.CommandCategory][]*dispatchers.DispatchNode)
	add := func(n *dispatchers.DispatchNode) {
		if n.Action != nil {
			grouped[n.Category] = append(grouped[n.Category], n)
		}
	}

	add(start)
	dispatchers.Walk(start, add)
	return grouped
}
