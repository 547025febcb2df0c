// Package catalogue maintains the canonical skill vocabulary: canonical
// names, their aliases and categories, and the alias-matching machinery
// built on top of them.
//
// Lookups are two-tier: a persistent Store (the skills table) is consulted
// first, then the built-in fallback alias table and the static seed list.
// The catalogue stays fully functional with no store at all, so skill
// normalization and extraction keep working when the database is down.
package catalogue

import (
	"context"
	"log"
	"strings"
	"sync"
)

// Entry is one canonical skill with its alias surface forms.
type Entry struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases"`
}

// Store is the persistent tier of the catalogue. Implementations must treat
// canonical names as unique case-insensitively and make UpsertEntry a no-op
// when an entry with the same name already exists.
type Store interface {
	// ListEntries returns every catalogue entry.
	ListEntries(ctx context.Context) ([]Entry, error)
	// FindByTerm resolves a lowercased term against canonical names first,
	// then aliases. Returns (nil, nil) when nothing matches.
	FindByTerm(ctx context.Context, term string) (*Entry, error)
	// UpsertEntry inserts an entry, ignoring case-insensitive name conflicts.
	UpsertEntry(ctx context.Context, entry Entry) error
}

// DefaultCategory tags entries with no better grouping.
const DefaultCategory = "General"

// Catalogue is the two-tier skill vocabulary. The zero value is not usable;
// construct with New. A nil store is valid and means static-only operation.
type Catalogue struct {
	store Store

	mu        sync.RWMutex
	extractor *Extractor
}

// New creates a catalogue backed by store. Pass nil to run purely from the
// static seed data and fallback alias table.
func New(store Store) *Catalogue {
	return &Catalogue{store: store}
}

// Resolve maps an arbitrary term to its canonical skill name. Resolution
// order: store canonical name, store alias, fallback alias table, seed list
// (names before aliases, so an exact canonical match is never shadowed by
// another entry's alias). Store failures are logged and degrade to the
// static tiers; Resolve itself never fails.
func (c *Catalogue) Resolve(ctx context.Context, term string) (string, bool) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return "", false
	}
	lower := strings.ToLower(trimmed)

	if c.store != nil {
		entry, err := c.store.FindByTerm(ctx, lower)
		if err != nil {
			log.Printf("[catalogue] store lookup for %q failed, using static tables: %v", trimmed, err)
		} else if entry != nil {
			return entry.Name, true
		}
	}

	if name, ok := fallbackAliases[lower]; ok {
		return name, true
	}

	for _, e := range seedEntries {
		if strings.ToLower(e.Name) == lower {
			return e.Name, true
		}
	}
	for _, e := range seedEntries {
		for _, alias := range e.Aliases {
			if strings.EqualFold(alias, trimmed) {
				return e.Name, true
			}
		}
	}

	return "", false
}

// Add upserts canonical names into the store under the given category.
// Best effort: with no store this is a no-op, and per-entry failures are
// logged rather than returned. Concurrent Adds of the same name are safe
// because the store ignores name conflicts.
func (c *Catalogue) Add(ctx context.Context, names []string, category string) {
	if c.store == nil || len(names) == 0 {
		return
	}
	if category == "" {
		category = DefaultCategory
	}

	added := false
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := c.store.UpsertEntry(ctx, Entry{Name: name, Category: category}); err != nil {
			log.Printf("[catalogue] upsert of %q failed (ignored): %v", name, err)
			continue
		}
		added = true
	}
	if added {
		c.invalidate()
	}
}

// Entries returns the store's entries merged with any seed entries the store
// does not know about yet. With no store (or a failing one) it returns the
// seed list alone.
func (c *Catalogue) Entries(ctx context.Context) []Entry {
	var entries []Entry
	if c.store != nil {
		stored, err := c.store.ListEntries(ctx)
		if err != nil {
			log.Printf("[catalogue] listing store entries failed, using seed list: %v", err)
		} else {
			entries = stored
		}
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[strings.ToLower(e.Name)] = struct{}{}
	}
	for _, e := range seedEntries {
		if _, ok := seen[strings.ToLower(e.Name)]; !ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Extractor returns the compiled alias matcher for the current catalogue
// contents. Compilation is amortized: the matcher is built on first use and
// reused until the catalogue changes.
func (c *Catalogue) Extractor(ctx context.Context) *Extractor {
	c.mu.RLock()
	ex := c.extractor
	c.mu.RUnlock()
	if ex != nil {
		return ex
	}

	ex = NewExtractor(c.Entries(ctx))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.extractor == nil {
		c.extractor = ex
	}
	return c.extractor
}

// invalidate drops the cached extractor so the next extraction rebuilds it.
func (c *Catalogue) invalidate() {
	c.mu.Lock()
	c.extractor = nil
	c.mu.Unlock()
}
