// Package matching scores a candidate's skills against a job's required skills.
package matching

import (
	"math"
	"sort"
	"strings"

	"applicant-tracker/internal/storage"
)

const (
	interviewThreshold = 0.5
	screeningThreshold = 0.3
)

// Result is the outcome of scoring one candidate against one job.
type Result struct {
	Stage    storage.Stage `json:"stage"`
	MatchPct float64       `json:"match_pct"`
	Matched  []string      `json:"matched,omitempty"`
	Missing  []string      `json:"missing,omitempty"`
}

// Decide returns the hiring stage and match percentage for a candidate.
// Both arguments are comma-separated skill lists, compared case-insensitively.
func Decide(candidateSkills, requiredSkills string) (storage.Stage, float64) {
	r := Score(candidateSkills, requiredSkills)
	return r.Stage, r.MatchPct
}

// Score is Decide plus the matched and missing required skills, sorted.
func Score(candidateSkills, requiredSkills string) Result {
	// nothing to evaluate against, leave it to a human; whitespace alone is
	// a list without skills and falls through to Rejected
	if requiredSkills == "" {
		return Result{Stage: storage.StageScreening}
	}

	req := toSet(requiredSkills)
	have := toSet(candidateSkills)
	if len(req) == 0 || len(have) == 0 {
		return Result{Stage: storage.StageRejected, Missing: sortedKeys(req)}
	}

	var matched, missing []string
	for s := range req {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	ratio := float64(len(matched)) / float64(len(req))
	res := Result{
		MatchPct: math.Round(ratio*1000) / 10,
		Matched:  matched,
		Missing:  missing,
	}
	switch {
	case ratio >= interviewThreshold:
		res.Stage = storage.StageInterview
	case ratio >= screeningThreshold:
		res.Stage = storage.StageScreening
	default:
		res.Stage = storage.StageRejected
	}
	return res
}

// SplitSkills splits a comma-separated list into trimmed, non-empty items.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range SplitSkills(s) {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
