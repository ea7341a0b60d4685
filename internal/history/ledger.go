// Package history keeps the lines submitted during a console session and a
// cursor for recalling them with the arrow keys.
package history

// Ledger is an ordered list of submitted lines plus a navigation cursor.
// The cursor stays in [0, Len()]; Len() means "past the newest entry".
type Ledger struct {
	entries []string
	cursor  int
	limit   int
}

// New returns a ledger seeded with previously persisted lines, oldest first.
// A positive limit keeps only the newest limit entries of seed; lines
// appended afterwards are never dropped.
func New(seed []string, limit int) *Ledger {
	l := &Ledger{limit: limit}
	l.entries = append(l.entries, seed...)
	l.trim()
	l.cursor = len(l.entries)
	return l
}

// Append records line and resets the cursor past the end.
func (l *Ledger) Append(line string) {
	l.entries = append(l.entries, line)
	l.cursor = len(l.entries)
}

// Navigate moves the cursor by delta, clamped to the oldest and newest
// entries, and returns the entry under it. It is a no-op on an empty ledger.
func (l *Ledger) Navigate(delta int) (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}

	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor > len(l.entries)-1 {
		l.cursor = len(l.entries) - 1
	}

	return l.entries[l.cursor], true
}

func (l *Ledger) Older() (string, bool) { return l.Navigate(-1) }

func (l *Ledger) Newer() (string, bool) { return l.Navigate(1) }

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) Cursor() int {
	return l.cursor
}

// Entries returns a copy of all entries, oldest first.
func (l *Ledger) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Since returns the entries recorded after the first n.
func (l *Ledger) Since(n int) []string {
	if n < 0 {
		n = 0
	}
	if n >= len(l.entries) {
		return nil
	}
	out := make([]string, len(l.entries)-n)
	copy(out, l.entries[n:])
	return out
}

func (l *Ledger) trim() {
	if l.limit <= 0 || len(l.entries) <= l.limit {
		return
	}
	l.entries = append([]string(nil), l.entries[len(l.entries)-l.limit:]...)
}
