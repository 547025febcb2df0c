package skills

import "strings"

// categoryKeywords is checked in order; the first group with a keyword
// contained in the job title wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"IT & Technology", []string{"developer", "engineer", "programmer"}},
	{"Finance & Accounting", []string{"accountant", "finance", "banker"}},
	{"Marketing & Sales", []string{"marketing", "sales", "advertising"}},
	{"Healthcare", []string{"nurse", "doctor", "medical"}},
	{"Education", []string{"teacher", "professor", "educator"}},
	{"Design & Creative", []string{"designer", "artist", "creative"}},
}

// InferCategory guesses a skill category from a job title. Used to tag
// catalogue entries auto-added by the job-posting flow; it plays no part in
// match scoring.
func InferCategory(jobTitle string) string {
	title := strings.ToLower(jobTitle)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(title, keyword) {
				return group.category
			}
		}
	}
	return "General"
}
