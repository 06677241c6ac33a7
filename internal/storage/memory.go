package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps jobs and candidates in process memory.
// It backs tests and the "memory" store setting.
type MemoryStore struct {
	mu         sync.Mutex
	jobs       []Job
	candidates []Candidate
	nextJob    int64
	nextCand   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateJob(_ context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextJob++
	job.ID = m.nextJob
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *MemoryStore) ListJobs(_ context.Context) ([]Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Job(nil), m.jobs...), nil
}

func (m *MemoryStore) GetJob(_ context.Context, id int64) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == id {
			j := j
			return &j, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteJob(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, j := range m.jobs {
		if j.ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CountCandidates(_ context.Context, jobID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cnt := 0
	for _, c := range m.candidates {
		if c.JobID == jobID {
			cnt++
		}
	}
	return cnt, nil
}

func (m *MemoryStore) SaveCandidate(_ context.Context, c *Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCand++
	c.ID = m.nextCand
	m.candidates = append(m.candidates, *c)
	return nil
}

func (m *MemoryStore) ListCandidates(_ context.Context, jobID int64) ([]Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []Candidate
	for _, c := range m.candidates {
		if c.JobID == jobID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *MemoryStore) ListShortlist(_ context.Context) ([]ShortlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jobs := make(map[int64]Job, len(m.jobs))
	for _, j := range m.jobs {
		jobs[j.ID] = j
	}
	var res []ShortlistEntry
	for _, c := range m.candidates {
		if c.Stage != StageInterview {
			continue
		}
		// inner join: candidates of a missing job are dropped
		j, ok := jobs[c.JobID]
		if !ok {
			continue
		}
		res = append(res, ShortlistEntry{
			JobCode:  j.JobCode,
			Title:    j.Title,
			Name:     c.Name,
			Email:    c.Email,
			MatchPct: c.MatchPct,
			Skills:   c.Skills,
		})
	}
	return res, nil
}
