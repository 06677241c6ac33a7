package storage

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// Stage is a candidate's position in the hiring funnel.
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageRejected  Stage = "Rejected"
)

// Stages lists every stage in funnel order.
var Stages = []Stage{StageApplied, StageScreening, StageInterview, StageRejected}

// ParseStage matches s against the known stages, ignoring case and
// surrounding spaces.
func ParseStage(s string) (Stage, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Stages {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// JobStatusOpen is the status every new job starts with.
const JobStatusOpen = "Open"

// Job is a row of the jobs table. Dates are ISO (YYYY-MM-DD) strings.
type Job struct {
	ID             int64  `json:"id"`
	JobCode        string `json:"job_code"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	CreatedDate    string `json:"created_date"`
	ClosedDate     string `json:"closed_date"`
	RequiredSkills string `json:"required_skills"`
	Status         string `json:"status"`
}

// Candidate is a row of the candidates table.
// Skills is kept comma-separated, the same way it is stored.
type Candidate struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Skills   string  `json:"skills"`
	Stage    Stage   `json:"stage"`
	MatchPct float64 `json:"match_pct"`
	JobID    int64   `json:"job_id"`
}

// ShortlistEntry is a candidate at the Interview stage together with its job.
type ShortlistEntry struct {
	JobCode  string  `json:"job_code"`
	Title    string  `json:"title"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	MatchPct float64 `json:"match_pct"`
	Skills   string  `json:"skills"`
}
