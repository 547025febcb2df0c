package catalogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(nil).Extractor(context.Background())
}

func TestExtract_SeparatorVariants(t *testing.T) {
	ex := defaultExtractor(t)

	skills := ex.Extract("I have 5 years of React.js and Node js experience")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Node.js")
}

func TestExtract_BoundaryRejectsSubstrings(t *testing.T) {
	ex := defaultExtractor(t)

	assert.NotContains(t, ex.Extract("worked at a nuclear reactor facility"), "React")
	assert.NotContains(t, ex.Extract("classic javascripting"), "JavaScript")
}

func TestExtract_PunctuationHeavySkills(t *testing.T) {
	ex := defaultExtractor(t)

	skills := ex.Extract("Fluent in C++, C# and .NET development")
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
	assert.Contains(t, skills, ".NET")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	ex := defaultExtractor(t)

	skills := ex.Extract("DOCKER and kubernetes in production")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
}

func TestExtract_GermanAliases(t *testing.T) {
	ex := defaultExtractor(t)

	skills := ex.Extract("Sprachen: Englisch und Deutsch • Führerschein Klasse B")
	assert.Contains(t, skills, "English")
	assert.Contains(t, skills, "German")
	assert.Contains(t, skills, "Driving License")
}

func TestExtract_EmptyText(t *testing.T) {
	ex := defaultExtractor(t)

	assert.Empty(t, ex.Extract(""))
	assert.Empty(t, ex.Extract("   \t "))
}

func TestExtract_NoMatches(t *testing.T) {
	ex := defaultExtractor(t)
	assert.Empty(t, ex.Extract("lorem ipsum dolor sit amet"))
}

func TestExtract_SortedAndDeterministic(t *testing.T) {
	ex := defaultExtractor(t)
	text := "TypeScript, React, Docker, PostgreSQL, English"

	first := ex.Extract(text)
	require.NotEmpty(t, first)
	assert.IsNonDecreasing(t, first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ex.Extract(text))
	}
}

func TestExtract_MatchAtTextEdges(t *testing.T) {
	ex := defaultExtractor(t)

	assert.Contains(t, ex.Extract("React"), "React")
	assert.Contains(t, ex.Extract("skills: React"), "React")
	assert.Contains(t, ex.Extract("React is my main tool"), "React")
}

func TestAliasPattern_Invalid(t *testing.T) {
	_, err := aliasPattern("")
	assert.Error(t, err)

	_, err = aliasPattern(" ./- ")
	assert.Error(t, err)
}

func TestAliasPattern_EveryAliasFindsItsEntry(t *testing.T) {
	// Each seed alias embedded in a sentence must resolve to its entry.
	ex := NewExtractor(seedEntries)
	for _, entry := range seedEntries {
		for _, alias := range entry.Aliases {
			skills := ex.Extract("I know " + alias + " well")
			assert.Contains(t, skills, entry.Name, "alias %q of %q", alias, entry.Name)
		}
	}
}
