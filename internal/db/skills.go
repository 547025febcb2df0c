package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-board/internal/catalogue"
)

// SkillStore exposes the skills table as a catalogue.Store.
type SkillStore struct {
	db *DB
}

// Skills returns the catalogue-facing view of the skills table
func (db *DB) Skills() *SkillStore {
	return &SkillStore{db: db}
}

// ListEntries retrieves the full skill vocabulary
func (s *SkillStore) ListEntries(ctx context.Context) ([]catalogue.Entry, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT name, category, aliases FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	entries := []catalogue.Entry{}
	for rows.Next() {
		var e catalogue.Entry
		var aliases StringArray
		if err := rows.Scan(&e.Name, &e.Category, &aliases); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		e.Aliases = aliases
		entries = append(entries, e)
	}
	return entries, nil
}

// FindByTerm resolves a lowercased term against canonical names first,
// then aliases. Returns nil when the term is unknown.
func (s *SkillStore) FindByTerm(ctx context.Context, term string) (*catalogue.Entry, error) {
	entry, err := s.scanEntry(s.db.pool.QueryRow(ctx,
		`SELECT name, category, aliases FROM skills WHERE LOWER(name) = $1`, term))
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	return s.scanEntry(s.db.pool.QueryRow(ctx,
		`SELECT name, category, aliases FROM skills
		 WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(aliases) alias
			WHERE LOWER(alias) = $1
		 )
		 ORDER BY name
		 LIMIT 1`, term))
}

func (s *SkillStore) scanEntry(row pgx.Row) (*catalogue.Entry, error) {
	var e catalogue.Entry
	var aliases StringArray
	err := row.Scan(&e.Name, &e.Category, &aliases)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	e.Aliases = aliases
	return &e, nil
}

// UpsertEntry adds a skill to the vocabulary. An existing entry with the
// same name keeps its category and aliases.
func (s *SkillStore) UpsertEntry(ctx context.Context, entry catalogue.Entry) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return fmt.Errorf("skill name is empty")
	}
	category := entry.Category
	if category == "" {
		category = catalogue.DefaultCategory
	}

	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO skills (name, category, aliases)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (LOWER(name)) DO NOTHING`,
		name, category, StringArray(entry.Aliases),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill %s: %w", name, err)
	}
	return nil
}
