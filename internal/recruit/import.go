package recruit

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"applicant-tracker/internal/matching"
	"applicant-tracker/internal/sheet"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

// ImportResult reports a spreadsheet import. Scored is false when stage and
// match_pct were taken from the sheet instead of the decision engine.
type ImportResult struct {
	Imported []storage.Candidate `json:"imported"`
	Scored   bool                `json:"scored"`
}

// ImportSpreadsheet stores every data row of an XLSX sheet as a candidate of
// the job. Columns are read as given: name, email, phone, skills, stage and
// match_pct, defaulting to "", "Applied" and 0. Rows are stored even without
// an email. With rescore set, stage and match_pct are computed from the skills
// column instead.
func (s *Service) ImportSpreadsheet(ctx context.Context, jobID int64, r io.Reader, rescore bool) (*ImportResult, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	rows, err := sheet.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}

	// every row is checked before the first write
	cands := make([]storage.Candidate, 0, len(rows))
	for i, row := range rows {
		c, err := candidateFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: data row %d: %v", ErrInvalidSheet, i+1, err)
		}
		c.JobID = job.ID
		if rescore {
			c.Stage, c.MatchPct = matching.Decide(c.Skills, job.RequiredSkills)
		}
		cands = append(cands, c)
	}

	res := &ImportResult{Imported: []storage.Candidate{}, Scored: rescore}
	for i := range cands {
		c := cands[i]
		if err := s.store.SaveCandidate(ctx, &c); err != nil {
			return res, fmt.Errorf("saving data row %d: %w", i+1, err)
		}
		s.publishCandidate(ctx, &c)
		res.Imported = append(res.Imported, c)
	}

	s.logger.Info("spreadsheet imported",
		zap.Int64("job_id", job.ID),
		zap.Int("rows", len(res.Imported)),
		zap.Bool("rescored", rescore),
	)
	return res, nil
}

func candidateFromRow(row sheet.Row) (storage.Candidate, error) {
	pct, err := strconv.ParseFloat(row.Get("match_pct", "0"), 64)
	if err != nil {
		return storage.Candidate{}, fmt.Errorf("invalid match_pct %q", row.Get("match_pct", ""))
	}
	raw := row.Get("stage", string(storage.StageApplied))
	stage, ok := storage.ParseStage(raw)
	if !ok {
		return storage.Candidate{}, fmt.Errorf("unknown stage %q", raw)
	}
	return storage.Candidate{
		Name:     row.Get("name", ""),
		Email:    row.Get("email", ""),
		Phone:    row.Get("phone", ""),
		Skills:   row.Get("skills", ""),
		Stage:    stage,
		MatchPct: pct,
	}, nil
}
