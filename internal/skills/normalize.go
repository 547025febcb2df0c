// Package skills canonicalizes skill tokens and infers job categories.
package skills

import (
	"context"
	"strings"

	"github.com/jonathan/job-board/internal/catalogue"
)

// Normalizer maps free-form skill tokens onto the catalogue's canonical
// names. Unknown tokens pass through verbatim; nothing here ever fails.
type Normalizer struct {
	cat *catalogue.Catalogue
}

// NewNormalizer creates a normalizer over the given catalogue.
func NewNormalizer(cat *catalogue.Catalogue) *Normalizer {
	return &Normalizer{cat: cat}
}

// NormalizeSkill resolves a single token to its canonical skill name.
// Whitespace-only tokens resolve to ""; unrecognized tokens are returned
// trimmed but otherwise unchanged, never dropped.
func (n *Normalizer) NormalizeSkill(ctx context.Context, token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if name, ok := n.cat.Resolve(ctx, trimmed); ok {
		return name
	}
	return trimmed
}

// NormalizeSkills resolves every token, then drops empties and
// case-insensitive duplicates, preserving the order of first occurrence.
// Safe with zero, one or many elements and with an unreachable store.
func (n *Normalizer) NormalizeSkills(ctx context.Context, tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		normalized := n.NormalizeSkill(ctx, token)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
