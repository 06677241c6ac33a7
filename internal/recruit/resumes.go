package recruit

import (
	"context"
	"fmt"

	"applicant-tracker/internal/cv"
	"applicant-tracker/internal/matching"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

// ResumeFile is one uploaded resume.
type ResumeFile struct {
	Filename string
	Data     []byte
}

// Preview is a parsed and scored resume that has not been stored yet.
// Name is a best-effort guess and may be empty or wrong.
type Preview struct {
	Filename string        `json:"filename"`
	Name     string        `json:"name,omitempty"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Skills   string        `json:"skills"`
	MatchPct float64       `json:"match_pct"`
	Decision storage.Stage `json:"decision"`
	Matched  []string      `json:"matched,omitempty"`
	Missing  []string      `json:"missing,omitempty"`
	JobID    int64         `json:"job_id"`
}

// Storable reports whether the preview carries an email, the minimum a
// candidate needs to be saved.
func (p Preview) Storable() bool {
	return p.Email != ""
}

// Candidate converts the preview into a candidate row.
func (p Preview) Candidate() storage.Candidate {
	return storage.Candidate{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Skills:   p.Skills,
		Stage:    p.Decision,
		MatchPct: p.MatchPct,
		JobID:    p.JobID,
	}
}

// Assemble runs the field extractors over lowercase resume text and scores
// the skills against the job.
func (s *Service) Assemble(text string, job *storage.Job) Preview {
	skills := s.skills.Extract(text)
	score := matching.Score(skills, job.RequiredSkills)
	return Preview{
		Name:     cv.ExtractName(text),
		Email:    cv.ExtractEmail(text),
		Phone:    cv.ExtractPhone(text),
		Skills:   skills,
		MatchPct: score.MatchPct,
		Decision: score.Stage,
		Matched:  score.Matched,
		Missing:  score.Missing,
		JobID:    job.ID,
	}
}

// PreviewResumes parses and scores files one by one, in order. Files that
// cannot be read still produce a (mostly empty) preview.
func (s *Service) PreviewResumes(ctx context.Context, jobID int64, files []ResumeFile) ([]Preview, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	previews := make([]Preview, 0, len(files))
	for _, f := range files {
		text := s.text.Extract(cv.FormatFromFilename(f.Filename), f.Data)
		p := s.Assemble(text, job)
		p.Filename = f.Filename

		s.logger.Debug("resume parsed",
			zap.String("file", f.Filename),
			zap.Int("text_length", len(text)),
			zap.String("skills", p.Skills),
			zap.String("decision", string(p.Decision)),
			zap.Float64("match_pct", p.MatchPct),
		)
		previews = append(previews, p)
	}
	return previews, nil
}

// SaveResult reports what SaveCandidates did.
type SaveResult struct {
	Saved   []storage.Candidate `json:"saved"`
	Skipped []string            `json:"skipped"` // filenames without an email
}

// SaveCandidates stores previews that have an email and skips the rest.
func (s *Service) SaveCandidates(ctx context.Context, previews []Preview) (*SaveResult, error) {
	res := &SaveResult{Saved: []storage.Candidate{}, Skipped: []string{}}
	for _, p := range previews {
		if !p.Storable() {
			s.logger.Info("skipping resume without email", zap.String("file", p.Filename))
			res.Skipped = append(res.Skipped, p.Filename)
			continue
		}

		c := p.Candidate()
		if err := s.store.SaveCandidate(ctx, &c); err != nil {
			return res, fmt.Errorf("saving candidate %s: %w", c.Email, err)
		}
		s.publishCandidate(ctx, &c)
		res.Saved = append(res.Saved, c)
	}

	s.logger.Info("candidates saved",
		zap.Int("saved", len(res.Saved)),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// IngestResumes previews and saves in one step.
func (s *Service) IngestResumes(ctx context.Context, jobID int64, files []ResumeFile) ([]Preview, *SaveResult, error) {
	previews, err := s.PreviewResumes(ctx, jobID, files)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.SaveCandidates(ctx, previews)
	return previews, res, err
}
