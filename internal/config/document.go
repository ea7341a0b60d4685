package config

import (
	"slices"
	"strings"

	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

// entry is a line of .swrc that names a key. A placeholder is the
// commented "# key=" line the seeded file carries for an optional key.
type entry struct {
	key         string
	comment     string
	placeholder bool
}

func parseEntry(line string) (entry, bool) {
	trimmed := strings.TrimSpace(line)

	if rest, commented := strings.CutPrefix(trimmed, "#"); commented {
		key, value, found := strings.Cut(strings.TrimSpace(rest), "=")
		key = strings.TrimSpace(key)
		if !found || strings.TrimSpace(value) != "" || !domain.IsValidConfigKey(key) {
			return entry{}, false
		}
		return entry{key: key, placeholder: true}, true
	}

	key, value, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return entry{}, false
	}
	return entry{key: key, comment: inlineComment(value)}, true
}

// inlineComment returns the "# ..." suffix of a value, if any.
func inlineComment(value string) string {
	rest := strings.TrimSpace(value)
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return ""
		}
		rest = rest[end+2:]
	}

	rest = " " + rest
	if idx := strings.Index(rest, " #"); idx >= 0 {
		return strings.TrimSpace(rest[idx:])
	}
	return ""
}

// formatValue quotes values that Parse would otherwise trim or cut short.
func formatValue(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " #") || strings.HasPrefix(value, `"`) {
		return `"` + value + `"`
	}
	return value
}

// Set stores key=value in lines. The first live entry is rewritten in place
// with its inline comment kept and later duplicates are dropped. Without a
// live entry the seeded placeholder is filled in, or the entry is appended.
func Set(lines []string, key, value string) ([]string, error) {
	if !domain.IsValidConfigKey(key) {
		return nil, usage.InvalidConfigKey(key)
	}

	line := key + "=" + formatValue(value)
	out := make([]string, 0, len(lines)+1)
	placeholder := -1
	written := false

	for _, l := range lines {
		e, ok := parseEntry(l)
		switch {
		case !ok || e.key != key:
			out = append(out, l)
		case e.placeholder:
			if placeholder < 0 {
				placeholder = len(out)
			}
			out = append(out, l)
		case written:
		default:
			if e.comment != "" {
				out = append(out, line+" "+e.comment)
			} else {
				out = append(out, line)
			}
			written = true
		}
	}

	switch {
	case written:
		return out, nil
	case placeholder >= 0:
		out[placeholder] = line
		return out, nil
	default:
		return append(out, line), nil
	}
}

// Unset drops every live entry for key so its default applies again. An
// optional key gets its placeholder back where the first entry was.
func Unset(lines []string, key string) ([]string, error) {
	def, ok := domain.LookupConfigKey(key)
	if !ok {
		return nil, usage.InvalidConfigKey(key)
	}

	out := make([]string, 0, len(lines))
	removedAt := -1
	hasPlaceholder := false

	for _, l := range lines {
		e, ok := parseEntry(l)
		switch {
		case !ok || e.key != key:
			out = append(out, l)
		case e.placeholder:
			hasPlaceholder = true
			out = append(out, l)
		case removedAt < 0:
			removedAt = len(out)
		}
	}

	if def.HideIfEmpty && !hasPlaceholder && removedAt >= 0 {
		out = slices.Insert(out, removedAt, "# "+key+"=")
	}
	return out, nil
}
