// Package matching scores candidate skill sets against job requirements.
package matching

import (
	"math"
	"strings"
)

// Required skills dominate the blended score.
const (
	requiredWeight = 0.8
	niceWeight     = 0.2
)

// Result is the outcome of scoring one candidate against one job. All
// percentages are rounded to whole numbers; the slices echo the job's
// skill casing, in the job's order.
type Result struct {
	Score           int      `json:"score"`
	RequiredPct     int      `json:"required_pct"`
	NicePct         int      `json:"nice_pct"`
	RequiredMatches []string `json:"required_matches"`
	NiceMatches     []string `json:"nice_matches"`
	MissingRequired []string `json:"missing_required"`
}

// Compute scores a candidate skill set against a job's required and
// nice-to-have skills. Comparison is case-insensitive and set-based;
// duplicates within an input list count once. The inputs are assumed to
// be normalized already, but nothing breaks if they are not.
func Compute(required, nice, candidate []string) Result {
	req := dedup(required)
	opt := dedup(nice)

	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	res := Result{
		RequiredMatches: []string{},
		NiceMatches:     []string{},
		MissingRequired: []string{},
	}

	for _, s := range req {
		if _, ok := have[strings.ToLower(s)]; ok {
			res.RequiredMatches = append(res.RequiredMatches, s)
		} else {
			res.MissingRequired = append(res.MissingRequired, s)
		}
	}
	for _, s := range opt {
		if _, ok := have[strings.ToLower(s)]; ok {
			res.NiceMatches = append(res.NiceMatches, s)
		}
	}

	// A job with no skills in a tier contributes 0 for that tier rather
	// than a vacuous 100.
	var reqPct, nicePct float64
	if len(req) > 0 {
		reqPct = float64(len(res.RequiredMatches)) / float64(len(req)) * 100
	}
	if len(opt) > 0 {
		nicePct = float64(len(res.NiceMatches)) / float64(len(opt)) * 100
	}

	res.RequiredPct = int(math.Round(reqPct))
	res.NicePct = int(math.Round(nicePct))
	// Blend the unrounded percentages so the score does not inherit
	// rounding error from the per-tier figures.
	res.Score = int(math.Round(reqPct*requiredWeight + nicePct*niceWeight))

	return res
}

// dedup drops blank and case-insensitively duplicated entries, keeping
// the first occurrence and its casing.
func dedup(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
