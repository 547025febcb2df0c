// Package ingestion turns uploaded resume documents into clean plain text.
package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	hyphenWrapRE = regexp.MustCompile(`-[ \t]*\r?\n`)
	bulletRE     = regexp.MustCompile(`[•▪◦·]`)
	newlineRE    = regexp.MustCompile(`\n+`)
	spaceRE      = regexp.MustCompile(`\s+`)
)

// NormalizeText flattens raw extracted document text into a single line of
// space-separated tokens ready for alias matching. PDF extractors emit soft
// hyphens, hyphen-broken line wraps and bullet glyphs; all of those are
// removed here. Idempotent: normalizing already-normalized text is a no-op.
func NormalizeText(raw string) string {
	// NFC first so composed and decomposed forms of the same character
	// (common in PDF output with umlauts) compare equal downstream.
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "\u00ad", "")
	s = hyphenWrapRE.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = bulletRE.ReplaceAllString(s, " ")
	s = newlineRE.ReplaceAllString(s, " ")
	s = spaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
