// Package recruit wires resume parsing and scoring to the job and candidate store.
package recruit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"applicant-tracker/internal/cv"
	"applicant-tracker/internal/events"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var (
	ErrJobFieldsRequired = errors.New("job code and title are mandatory")
	ErrInvalidDate       = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrJobNotFound       = errors.New("job not found")
	ErrJobHasCandidates  = errors.New("cannot delete job with candidates attached")
	ErrInvalidSheet      = errors.New("invalid spreadsheet")
)

// Store is the persistence the service needs. storage.DB and
// storage.MemoryStore both satisfy it.
type Store interface {
	CreateJob(ctx context.Context, job *storage.Job) error
	ListJobs(ctx context.Context) ([]storage.Job, error)
	GetJob(ctx context.Context, id int64) (*storage.Job, error)
	DeleteJob(ctx context.Context, id int64) error
	CountCandidates(ctx context.Context, jobID int64) (int, error)
	SaveCandidate(ctx context.Context, c *storage.Candidate) error
	ListCandidates(ctx context.Context, jobID int64) ([]storage.Candidate, error)
	ListShortlist(ctx context.Context) ([]storage.ShortlistEntry, error)
}

type Service struct {
	store     Store
	text      *cv.TextExtractor
	skills    *cv.SkillMatcher
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store Store, text *cv.TextExtractor, skills *cv.SkillMatcher, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		text:      text,
		skills:    skills,
		publisher: publisher,
		logger:    logger.Named("recruit"),
		now:       time.Now,
	}
}

// NewJob is the input of CreateJob. Empty dates default to today.
type NewJob struct {
	JobCode        string `json:"job_code"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	CreatedDate    string `json:"created_date"`
	ClosedDate     string `json:"closed_date"`
	RequiredSkills string `json:"required_skills"`
}

// CreateJob validates and stores an open job. Nothing is written when the
// code or title is missing.
func (s *Service) CreateJob(ctx context.Context, in NewJob) (*storage.Job, error) {
	code := strings.TrimSpace(in.JobCode)
	title := strings.TrimSpace(in.Title)
	if code == "" || title == "" {
		return nil, ErrJobFieldsRequired
	}

	today := s.now().Format(dateLayout)
	created, err := normalizeDate(in.CreatedDate, today)
	if err != nil {
		return nil, err
	}
	closed, err := normalizeDate(in.ClosedDate, today)
	if err != nil {
		return nil, err
	}

	job := &storage.Job{
		JobCode:        code,
		Title:          title,
		Department:     strings.TrimSpace(in.Department),
		CreatedDate:    created,
		ClosedDate:     closed,
		RequiredSkills: strings.ToLower(in.RequiredSkills),
		Status:         storage.JobStatusOpen,
	}
	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	s.logger.Info("job created", zap.Int64("job_id", job.ID), zap.String("job_code", job.JobCode))
	return job, nil
}

func normalizeDate(v, def string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return v, nil
}

func (s *Service) ListJobs(ctx context.Context) ([]storage.Job, error) {
	return s.store.ListJobs(ctx)
}

func (s *Service) GetJob(ctx context.Context, id int64) (*storage.Job, error) {
	job, err := s.store.GetJob(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading job %d: %w", id, err)
	}
	return job, nil
}

// DeleteJob removes a job that no candidate references.
func (s *Service) DeleteJob(ctx context.Context, id int64) error {
	if _, err := s.GetJob(ctx, id); err != nil {
		return err
	}

	cnt, err := s.store.CountCandidates(ctx, id)
	if err != nil {
		return fmt.Errorf("counting candidates of job %d: %w", id, err)
	}
	if cnt > 0 {
		s.logger.Warn("job delete refused", zap.Int64("job_id", id), zap.Int("candidates", cnt))
		return ErrJobHasCandidates
	}

	if err := s.store.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("deleting job %d: %w", id, err)
	}
	s.logger.Info("job deleted", zap.Int64("job_id", id))
	return nil
}

func (s *Service) publishCandidate(ctx context.Context, c *storage.Candidate) {
	payload, err := json.Marshal(c)
	if err != nil {
		s.logger.Warn("encoding candidate event", zap.Error(err))
		return
	}
	ev := events.Event{
		Type:       events.CandidateCreated,
		JobID:      c.JobID,
		Payload:    payload,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("publishing candidate event",
			zap.Int64("candidate_id", c.ID),
			zap.Error(err),
		)
	}
}
