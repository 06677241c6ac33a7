package cv

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Skill match modes.
const (
	MatchSubstring = "substring"
	MatchWord      = "word"
)

// nameLines is how many leading lines ExtractName looks at.
const nameLines = 5

// DefaultSkills is the vocabulary used when none is configured.
var DefaultSkills = []string{
	"talent acquisition", "recruitment", "interviewing",
	"hr analytics", "onboarding", "compensation",
	"excel", "sql", "power bi", "python",
	"stakeholder management", "communication",
	"marketing", "seo", "content strategy",
	"procurement", "vendor management",
	"project management", "data analysis",
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+\-]+@[a-zA-Z0-9\-]+\.[a-zA-Z0-9.\-]+`)
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[\s\-]?\d{10}|\b\d{10}\b`)
)

// ExtractEmail returns the first email-looking substring of text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-looking substring of text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName guesses the candidate name: the first of the leading lines with
// two or three words and no "@", title-cased. Headers, addresses and job titles
// can be picked up too, so the result is a hint, not an identity.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameLines {
		lines = lines[:nameLines]
	}
	for _, line := range lines {
		words := len(strings.Fields(line))
		if (words == 2 || words == 3) && !strings.Contains(line, "@") {
			return cases.Title(language.Und).String(strings.TrimSpace(line))
		}
	}
	return ""
}

// SkillMatcher finds vocabulary skills in resume text.
type SkillMatcher struct {
	vocabulary []string
	patterns   []*regexp.Regexp // only in word mode
}

// NewSkillMatcher builds a matcher over vocabulary. Entries are lowercased and
// blanks dropped. mode is MatchSubstring (default) or MatchWord.
func NewSkillMatcher(vocabulary []string, mode string) *SkillMatcher {
	m := &SkillMatcher{}
	for _, s := range vocabulary {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		m.vocabulary = append(m.vocabulary, s)
		if mode == MatchWord {
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(s)+`\b`))
		}
	}
	return m
}

// Vocabulary returns the normalized skill list.
func (m *SkillMatcher) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

// Extract returns the found skills, deduplicated, sorted and joined with ", ".
// In substring mode "sql" also matches inside "mysql".
func (m *SkillMatcher) Extract(text string) string {
	seen := make(map[string]struct{})
	for i, s := range m.vocabulary {
		var found bool
		if m.patterns != nil {
			found = m.patterns[i].MatchString(text)
		} else {
			found = strings.Contains(text, s)
		}
		if found {
			seen[s] = struct{}{}
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return strings.Join(skills, ", ")
}
