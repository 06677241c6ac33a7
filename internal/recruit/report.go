package recruit

import (
	"context"
	"fmt"

	"applicant-tracker/internal/storage"
)

// StageCount is one bar of the hiring funnel.
type StageCount struct {
	Stage      storage.Stage `json:"stage"`
	Candidates int           `json:"candidates"`
}

// Dashboard summarizes the candidates of one job.
type Dashboard struct {
	Job        storage.Job         `json:"job"`
	Total      int                 `json:"total"`
	Interview  int                 `json:"interview"`
	Rejected   int                 `json:"rejected"`
	Funnel     []StageCount        `json:"funnel"`
	Candidates []storage.Candidate `json:"candidates"`
}

// Dashboard counts the job's candidates per stage. The funnel lists stages in
// funnel order and leaves out stages nobody is in.
func (s *Service) Dashboard(ctx context.Context, jobID int64) (*Dashboard, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	cands, err := s.store.ListCandidates(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing candidates of job %d: %w", jobID, err)
	}

	counts := make(map[storage.Stage]int)
	for _, c := range cands {
		counts[c.Stage]++
	}

	d := &Dashboard{
		Job:        *job,
		Total:      len(cands),
		Interview:  counts[storage.StageInterview],
		Rejected:   counts[storage.StageRejected],
		Funnel:     []StageCount{},
		Candidates: cands,
	}
	if d.Candidates == nil {
		d.Candidates = []storage.Candidate{}
	}
	for _, st := range storage.Stages {
		if n := counts[st]; n > 0 {
			d.Funnel = append(d.Funnel, StageCount{Stage: st, Candidates: n})
		}
	}
	return d, nil
}

// Shortlist returns the candidates selected for interview across all jobs.
func (s *Service) Shortlist(ctx context.Context) ([]storage.ShortlistEntry, error) {
	entries, err := s.store.ListShortlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shortlist: %w", err)
	}
	if entries == nil {
		entries = []storage.ShortlistEntry{}
	}
	return entries, nil
}
