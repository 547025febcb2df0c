package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("5 years of Go"))
	require.NoError(t, err)
	assert.Equal(t, "5 years of Go", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("resume.odt", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestExtractText_InvalidPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtractText_InvalidDOCX(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a docx"))
	assert.Error(t, err)
}
