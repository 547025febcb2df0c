package skills

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleList is a skill list that tolerates the shapes clients actually
// send: a JSON array, a JSON-array-encoded string, or a comma-separated
// string. The core only ever sees the resulting well-typed slice.
type FlexibleList []string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = compact(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = ParseList(s)
		return nil
	}

	return fmt.Errorf("skills must be an array of strings or a string")
}

// ParseList splits a raw string into skill tokens. JSON-array-shaped strings
// are decoded; anything else is treated as CSV. Blank tokens are dropped.
func ParseList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return compact(arr)
		}
		// Not valid JSON after all; fall through to CSV.
	}

	return compact(strings.Split(s, ","))
}

func compact(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
