package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Software Engineer", "IT & Technology"},
		{"Backend Developer (m/w/d)", "IT & Technology"},
		{"Accountant", "Finance & Accounting"},
		{"Head of Marketing", "Marketing & Sales"},
		{"Registered Nurse", "Healthcare"},
		{"Math Teacher", "Education"},
		{"UX Designer", "Design & Creative"},
		{"Warehouse Operative", "General"},
		{"", "General"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferCategory(tt.title), "title %q", tt.title)
	}
}

func TestInferCategory_FirstGroupWins(t *testing.T) {
	// "Sales Engineer" hits both the IT and the Marketing group; the
	// earlier group takes precedence.
	assert.Equal(t, "IT & Technology", InferCategory("Sales Engineer"))
}

func TestInferCategory_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "Healthcare", InferCategory("DOCTOR OF MEDICINE"))
}
