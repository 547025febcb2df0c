package catalogue

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// tokenSeparator accepts any mix of space, hyphen, underscore, dot and slash
// between alias tokens, so "Node.js", "Node js" and "node-js" all match the
// single alias "node js".
const tokenSeparator = `[-_\s./]*`

// boundary characters: a match must not touch another Unicode letter or
// digit. '+', '#' and '.' are legitimate trailing skill characters ("C++",
// "C#", ".NET"), so they are excluded from the boundary classes too —
// otherwise "c" would match inside "c++".
const nonWord = `[^\p{L}\p{N}+#.]`

var tokenSplitRE = regexp.MustCompile(`[\s._/-]+`)

// aliasPattern compiles one alias into a tolerant, boundary-aware,
// case-insensitive pattern.
func aliasPattern(alias string) (*regexp.Regexp, error) {
	raw := strings.ToLower(strings.TrimSpace(alias))
	if raw == "" {
		return nil, fmt.Errorf("empty alias")
	}

	tokens := tokenSplitRE.Split(raw, -1)
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(tok))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("alias %q has no tokens", alias)
	}

	pattern := `(?i)(?:^|` + nonWord + `)(?:` + strings.Join(parts, tokenSeparator) + `)(?:` + nonWord + `|$)`
	return regexp.Compile(pattern)
}

// entryMatcher holds the compiled patterns for one catalogue entry.
type entryMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// Extractor finds canonical skill names in free text. Build it once per
// catalogue generation; Extract is safe for concurrent use.
type Extractor struct {
	matchers []entryMatcher
}

// NewExtractor compiles matchers for the given entries. The canonical name
// itself counts as an implicit alias. Aliases that fail to compile are
// skipped; an entry with no usable alias is dropped.
func NewExtractor(entries []Entry) *Extractor {
	matchers := make([]entryMatcher, 0, len(entries))
	for _, e := range entries {
		aliases := make([]string, 0, len(e.Aliases)+1)
		aliases = append(aliases, e.Name)
		aliases = append(aliases, e.Aliases...)

		seen := make(map[string]struct{}, len(aliases))
		var patterns []*regexp.Regexp
		for _, alias := range aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			re, err := aliasPattern(alias)
			if err != nil {
				continue
			}
			patterns = append(patterns, re)
		}
		if len(patterns) == 0 {
			continue
		}
		matchers = append(matchers, entryMatcher{name: e.Name, patterns: patterns})
	}
	return &Extractor{matchers: matchers}
}

// Extract returns the canonical names of every entry with at least one alias
// present in text, sorted alphabetically for determinism. The first matching
// alias settles an entry; empty or unmatchable text yields an empty result.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := make(map[string]struct{})
	for _, m := range e.matchers {
		for _, re := range m.patterns {
			if re.MatchString(text) {
				found[m.name] = struct{}{}
				break
			}
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
