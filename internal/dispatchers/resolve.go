package dispatchers

import (
	"os"
	"strings"
)

type CompletionKind int

const (
	NoSuggestion CompletionKind = iota
	SingleCompletion
	Ambiguous
)

func (k CompletionKind) String() string {
	switch k {
	case SingleCompletion:
		return "single"
	case Ambiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

type CompletionSource int

const (
	SourceNone CompletionSource = iota
	SourceGrammar
	SourcePath
)

func (s CompletionSource) String() string {
	switch s {
	case SourceGrammar:
		return "grammar"
	case SourcePath:
		return "path"
	default:
		return "none"
	}
}

// Completion is the outcome of resolving a partially typed line.
//
// Line holds the rewritten input for SingleCompletion and the original input
// otherwise. Partial is the fragment being completed: the unmatched token,
// "" when a subcommand is appended, or the path base name.
type Completion struct {
	Kind       CompletionKind
	Line       string
	Candidates []string
	Partial    string
	Source     CompletionSource
}

// ReadDirFunc lists the entry names of a directory.
type ReadDirFunc func(dir string) ([]string, error)

type ResolveOptions struct {
	ReadDir ReadDirFunc
}

func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{ReadDir: osReadDir}
}

func osReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Resolve completes line against the grammar below root, then against the
// filesystem when the grammar pass has nothing to offer. The first pass that
// produces a suggestion wins.
func Resolve(root *DispatchNode, line string, opts ResolveOptions) Completion {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Completion{Kind: NoSuggestion, Line: line}
	}

	if c, ok := resolveGrammar(root, line, tokens); ok {
		return c
	}

	if opts.ReadDir == nil {
		opts.ReadDir = osReadDir
	}
	if c, ok := resolvePath(line, tokens, opts.ReadDir); ok {
		return c
	}

	return Completion{Kind: NoSuggestion, Line: line}
}

func resolveGrammar(root *DispatchNode, line string, tokens []string) (Completion, bool) {
	current := root

	for i, tok := range tokens {
		if child, ok := current.Child(tok); ok {
			current = child
			continue
		}

		candidates := current.ChildrenWithPrefix(tok)
		switch len(candidates) {
		case 0:
			return Completion{}, false
		case 1:
			parts := make([]string, len(tokens))
			copy(parts, tokens)
			parts[i] = candidates[0]
			return Completion{
				Kind:       SingleCompletion,
				Line:       strings.Join(parts, " ") + " ",
				Candidates: candidates,
				Partial:    tok,
				Source:     SourceGrammar,
			}, true
		default:
			return Completion{
				Kind:       Ambiguous,
				Line:       line,
				Candidates: candidates,
				Partial:    tok,
				Source:     SourceGrammar,
			}, true
		}
	}

	children := current.ChildNames()
	switch len(children) {
	case 0:
		return Completion{}, false
	case 1:
		return Completion{
			Kind:       SingleCompletion,
			Line:       strings.Join(append(tokens, children[0]), " ") + " ",
			Candidates: children,
			Source:     SourceGrammar,
		}, true
	default:
		return Completion{
			Kind:       Ambiguous,
			Line:       line,
			Candidates: children,
			Source:     SourceGrammar,
		}, true
	}
}

func resolvePath(line string, tokens []string, readDir ReadDirFunc) (Completion, bool) {
	last := tokens[len(tokens)-1]
	if !strings.HasPrefix(last, Sentinel) {
		return Completion{}, false
	}

	dir, base := splitPath(strings.TrimPrefix(last, Sentinel))
	if dir == "" {
		return Completion{}, false
	}

	names, err := readDir(dir)
	if err != nil {
		return Completion{}, false
	}

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, base) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return Completion{}, false
	case 1:
		parts := make([]string, len(tokens))
		copy(parts, tokens)
		parts[len(parts)-1] = Sentinel + joinPath(dir, matches[0])
		return Completion{
			Kind:       SingleCompletion,
			Line:       strings.Join(parts, " ") + " ",
			Candidates: matches,
			Partial:    base,
			Source:     SourcePath,
		}, true
	default:
		return Completion{
			Kind:       Ambiguous,
			Line:       line,
			Candidates: matches,
			Partial:    base,
			Source:     SourcePath,
		}, true
	}
}

// splitPath splits p at its last slash. The directory keeps a lone root
// slash but loses other trailing slashes; a bare name has no directory.
func splitPath(p string) (dir, base string) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	dir, base = p[:idx+1], p[idx+1:]
	if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
		dir = trimmed
	}
	return dir, base
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
