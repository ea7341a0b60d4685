package plain

import (
	"strings"

	"github.com/spaceworld/console/internal/dispatchers"
)

// Suggester resolves a partial line without printing anything.
type Suggester interface {
	Suggest(line string) dispatchers.Completion
}

// completer adapts the console's resolver to readline.AutoCompleter.
// Readline only inserts text at the cursor, so a completion that would
// rewrite earlier text (case fixes, collapsed spacing) is offered only when
// the typed text is an exact prefix of it.
type completer struct {
	console Suggester
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	input := string(line[:pos])
	comp := c.console.Suggest(input)

	switch comp.Kind {
	case dispatchers.SingleCompletion:
		if !strings.HasPrefix(comp.Line, input) {
			return nil, 0
		}
		return [][]rune{[]rune(comp.Line[len(input):])}, 0

	case dispatchers.Ambiguous:
		lead := ""
		if comp.Partial == "" && !strings.HasSuffix(input, " ") {
			lead = " "
		}

		var out [][]rune
		for _, cand := range comp.Candidates {
			if !strings.HasPrefix(cand, comp.Partial) {
				continue
			}
			out = append(out, []rune(lead+cand[len(comp.Partial):]))
		}
		return out, len([]rune(comp.Partial))
	}
	return nil, 0
}
