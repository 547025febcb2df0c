package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-board/internal/catalogue"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(catalogue.New(nil))
}

func TestNormalizeSkill_KnownAliases(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	assert.Equal(t, "JavaScript", n.NormalizeSkill(ctx, "js"))
	assert.Equal(t, "JavaScript", n.NormalizeSkill(ctx, "JS"))
	assert.Equal(t, "English", n.NormalizeSkill(ctx, "englisch"))
	assert.Equal(t, "Node.js", n.NormalizeSkill(ctx, "  node js  "))
}

func TestNormalizeSkill_UnknownPassesThrough(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	assert.Equal(t, "Underwater Basket Weaving", n.NormalizeSkill(ctx, " Underwater Basket Weaving "))
}

func TestNormalizeSkill_Empty(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	assert.Equal(t, "", n.NormalizeSkill(ctx, ""))
	assert.Equal(t, "", n.NormalizeSkill(ctx, "   \t"))
}

func TestNormalizeSkill_Idempotent(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	for _, token := range []string{"js", "React.js", "englisch", "Made Up Skill"} {
		once := n.NormalizeSkill(ctx, token)
		assert.Equal(t, once, n.NormalizeSkill(ctx, once), "token %q", token)
	}
}

func TestNormalizeSkills_DedupCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	got := n.NormalizeSkills(ctx, []string{"Englisch", "englisch", "English"})
	assert.Equal(t, []string{"English"}, got)
}

func TestNormalizeSkills_PreservesFirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	got := n.NormalizeSkills(ctx, []string{"react.js", "js", "React", "docker"})
	assert.Equal(t, []string{"React", "JavaScript", "Docker"}, got)
}

func TestNormalizeSkills_DropsEmptyTokens(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	got := n.NormalizeSkills(ctx, []string{"", "  ", "js"})
	assert.Equal(t, []string{"JavaScript"}, got)
}

func TestNormalizeSkills_EmptyInput(t *testing.T) {
	ctx := context.Background()
	n := testNormalizer()

	assert.Empty(t, n.NormalizeSkills(ctx, nil))
	assert.Empty(t, n.NormalizeSkills(ctx, []string{}))
}
