package app

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Typewriter reveals a phrase one user-perceived character at a time.
type Typewriter struct {
	clusters []string
	shown    int
	text     strings.Builder
}

// NewTypewriter splits phrase into grapheme clusters after NFC normalization,
// so combining marks and emoji never appear half-typed.
func NewTypewriter(phrase string) *Typewriter {
	tw := &Typewriter{}
	g := uniseg.NewGraphemes(norm.NFC.String(phrase))
	for g.Next() {
		tw.clusters = append(tw.clusters, g.Str())
	}
	return tw
}

// Next reveals one more character and returns the visible text.
// Once everything is shown it keeps returning the full text.
func (tw *Typewriter) Next() string {
	if tw.shown < len(tw.clusters) {
		tw.text.WriteString(tw.clusters[tw.shown])
		tw.shown++
	}
	return tw.text.String()
}

// Done reports whether the whole phrase is visible.
func (tw *Typewriter) Done() bool { return tw.shown >= len(tw.clusters) }

// Len is the number of reveal steps the phrase needs.
func (tw *Typewriter) Len() int { return len(tw.clusters) }

// Text returns what is currently visible.
func (tw *Typewriter) Text() string { return tw.text.String() }
