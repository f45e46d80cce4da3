// Package normalize cleans raw notification text into a canonical form for
// signature matching and field extraction.
package normalize

import (
	"strings"
)

// Config holds the locale-specific substitutions the normalizer applies.
// It is passed explicitly so the pipeline stays a pure function of its
// inputs and configuration.
type Config struct {
	// CurrencyAliases maps currency glyphs to the canonical marker the
	// extractors anchor on, e.g. "₹" → "Rs".
	CurrencyAliases map[string]string
}

// DefaultConfig returns the substitutions for Indian bank notifications.
func DefaultConfig() Config {
	return Config{
		CurrencyAliases: map[string]string{
			"₹":   "Rs ",
			"INR": "INR ",
		},
	}
}

// encodingArtifacts are characters that differ from plain ASCII only by
// encoding: curly quotes, dashes, and the invisible separators some bank
// gateways insert. Invisible characters map to a space so that collapsing
// whitespace removes them without gluing adjacent tokens together.
var encodingArtifacts = []string{
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	" ", " ", // non-breaking space
	" ", " ", // thin space
	"​", " ", // zero-width space
	"‌", " ", // zero-width non-joiner
	"\uFEFF", " ", // byte order mark
}

// Normalizer produces canonical text. It is safe for concurrent use.
type Normalizer struct {
	replacer *strings.Replacer
}

// New creates a normalizer from the given configuration.
func New(cfg Config) *Normalizer {
	pairs := make([]string, 0, len(encodingArtifacts)+2*len(cfg.CurrencyAliases))
	pairs = append(pairs, encodingArtifacts...)
	for glyph, canonical := range cfg.CurrencyAliases {
		if glyph == canonical {
			continue
		}
		pairs = append(pairs, glyph, canonical)
	}
	return &Normalizer{replacer: strings.NewReplacer(pairs...)}
}

// Normalize cleans raw text into its canonical form. It strips encoding
// artifacts, rewrites currency glyphs, and collapses runs of whitespace,
// while preserving digit and currency sequences exactly. Normalize is
// idempotent and never fails; empty input yields an empty string.
func (n *Normalizer) Normalize(raw string) string {
	cleaned := n.replacer.Replace(raw)
	return strings.Join(strings.Fields(cleaned), " ")
}
