package style

import "github.com/spaceworld/console/internal/domain"

// Styler implements domain.Styler using the global style functions.
type Styler struct{}

func NewStyler() *Styler {
	return &Styler{}
}

func (s *Styler) Enabled() bool {
	return Enabled()
}

func (s *Styler) Tone(text string, tone domain.Tone) string {
	return Tone(text, tone)
}

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool                         { return false }
func (NopStyler) Tone(text string, _ domain.Tone) string { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
