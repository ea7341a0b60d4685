package dispatchers

import (
	"strings"
	"unicode"
)

// Sentinel marks the start of a filesystem path inside a command line.
const Sentinel = "~"

// ParsedLine is a submitted or partially typed line split on whitespace.
type ParsedLine struct {
	Raw    string
	Tokens []string
}

func ParseLine(raw string) ParsedLine {
	return ParsedLine{
		Raw:    raw,
		Tokens: strings.Fields(raw),
	}
}

func (p ParsedLine) Empty() bool {
	return len(p.Tokens) == 0
}

// Verb returns the first token, or "" for an empty line.
func (p ParsedLine) Verb() string {
	if len(p.Tokens) == 0 {
		return ""
	}
	return p.Tokens[0]
}

// PathToken returns everything after the first sentinel, trimmed.
func (p ParsedLine) PathToken() (string, bool) {
	idx := strings.Index(p.Raw, Sentinel)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(p.Raw[idx+len(Sentinel):]), true
}

// PathArgs splits the text after the sentinel on whitespace.
func (p ParsedLine) PathArgs() []string {
	path, ok := p.PathToken()
	if !ok {
		return nil
	}
	return strings.Fields(path)
}

// Rest returns the raw text following the first n tokens with the
// separating whitespace removed. Inner spacing is preserved.
func (p ParsedLine) Rest(n int) string {
	s := p.Raw
	for i := 0; i < n; i++ {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		s = s[end:]
	}
	return strings.TrimSpace(s)
}

// PendingPath extracts the target path of a staged destructive command by
// splitting on the sentinel and taking the second part. A path that itself
// contains the sentinel is truncated at it.
func PendingPath(pending string) string {
	parts := strings.Split(pending, Sentinel)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// PendingCommand builds the staged string for a destructive node.
func PendingCommand(node *DispatchNode, path string) string {
	return node.CommandLine() + " " + Sentinel + path
}
