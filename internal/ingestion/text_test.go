package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   \n\t  "))
}

func TestNormalizeText_SoftHyphens(t *testing.T) {
	assert.Equal(t, "JavaScript", NormalizeText("Java­Script"))
}

func TestNormalizeText_HyphenatedLineWrap(t *testing.T) {
	// A hyphen at a line break rejoins the split word.
	assert.Equal(t, "development experience", NormalizeText("develop-\nment experience"))
	assert.Equal(t, "development", NormalizeText("develop- \r\nment"))
}

func TestNormalizeText_RealHyphensSurvive(t *testing.T) {
	assert.Equal(t, "e-mail", NormalizeText("e-mail"))
}

func TestNormalizeText_BulletsAndNewlines(t *testing.T) {
	raw := "Skills:\r\n• React\n▪ Node.js\n◦ Docker\n· Git"
	assert.Equal(t, "Skills: React Node.js Docker Git", NormalizeText(raw))
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeText("  a \t b\n\n\nc  "))
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"develop-\nment\r\n• bullet­ list\n\n  spaced   out ",
		"Fähigkeiten: Präsentation und Kommunikation",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}
