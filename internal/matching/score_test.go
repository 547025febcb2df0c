package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Blended(t *testing.T) {
	res := Compute(
		[]string{"Go", "PostgreSQL"},
		[]string{"Docker"},
		[]string{"go", "docker"},
	)

	assert.Equal(t, 50, res.RequiredPct)
	assert.Equal(t, 100, res.NicePct)
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, []string{"Go"}, res.RequiredMatches)
	assert.Equal(t, []string{"Docker"}, res.NiceMatches)
	assert.Equal(t, []string{"PostgreSQL"}, res.MissingRequired)
}

func TestCompute_PerfectMatch(t *testing.T) {
	res := Compute([]string{"Go"}, []string{"Docker"}, []string{"Go", "Docker"})
	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.MissingRequired)
}

func TestCompute_NoOverlap(t *testing.T) {
	res := Compute([]string{"Go"}, []string{"Docker"}, []string{"Painting"})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, []string{"Go"}, res.MissingRequired)
}

func TestCompute_EmptyJobSkills(t *testing.T) {
	res := Compute(nil, nil, []string{"Go"})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.RequiredPct)
	assert.Equal(t, 0, res.NicePct)
}

func TestCompute_EmptyCandidate(t *testing.T) {
	res := Compute([]string{"Go"}, []string{"Docker"}, nil)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, []string{"Go"}, res.MissingRequired)
}

func TestCompute_RequiredOnly(t *testing.T) {
	// Nice-to-have contributes 0 when absent; required alone caps at 80.
	res := Compute([]string{"Go"}, nil, []string{"Go"})
	assert.Equal(t, 100, res.RequiredPct)
	assert.Equal(t, 80, res.Score)
}

func TestCompute_NiceOnly(t *testing.T) {
	res := Compute(nil, []string{"Docker"}, []string{"Docker"})
	assert.Equal(t, 100, res.NicePct)
	assert.Equal(t, 20, res.Score)
}

func TestCompute_ScoreBlendsUnroundedPercentages(t *testing.T) {
	// 1/3 required and 2/3 nice: 33.33*0.8 + 66.67*0.2 = 40.0.
	res := Compute(
		[]string{"A", "B", "C"},
		[]string{"D", "E", "F"},
		[]string{"A", "D", "E"},
	)
	assert.Equal(t, 33, res.RequiredPct)
	assert.Equal(t, 67, res.NicePct)
	assert.Equal(t, 40, res.Score)
}

func TestCompute_DuplicatesCountOnce(t *testing.T) {
	res := Compute(
		[]string{"Go", "go", "GO"},
		nil,
		[]string{"Go"},
	)
	assert.Equal(t, 100, res.RequiredPct)
	assert.Equal(t, []string{"Go"}, res.RequiredMatches)
}

func TestCompute_JSONFriendlySlices(t *testing.T) {
	// Empty result slices must be [] rather than null on the wire.
	res := Compute(nil, nil, nil)
	assert.NotNil(t, res.RequiredMatches)
	assert.NotNil(t, res.NiceMatches)
	assert.NotNil(t, res.MissingRequired)
}
