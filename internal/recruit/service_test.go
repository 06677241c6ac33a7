package recruit

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"applicant-tracker/internal/cv"
	"applicant-tracker/internal/cv/cvtest"
	"applicant-tracker/internal/events"
	"applicant-tracker/internal/storage"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore, *events.Recorder) {
	t.Helper()

	store := storage.NewMemoryStore()
	rec := &events.Recorder{}
	svc := NewService(
		store,
		cv.NewTextExtractor(cv.EngineDocconv, zap.NewNop()),
		cv.NewSkillMatcher(cv.DefaultSkills, cv.MatchSubstring),
		rec,
		zap.NewNop(),
	)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return svc, store, rec
}

func mustCreateJob(t *testing.T, svc *Service, skills string) *storage.Job {
	t.Helper()
	job, err := svc.CreateJob(context.Background(), NewJob{JobCode: "HR-1", Title: "Recruiter", RequiredSkills: skills})
	if err != nil {
		t.Fatalf("creating job: %v", err)
	}
	return job
}

func TestCreateJob(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, NewJob{
		JobCode:        "  HR-7 ",
		Title:          " Talent Partner ",
		Department:     " People ",
		ClosedDate:     "2026-04-30",
		RequiredSkills: "SQL, Excel, Recruitment",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := storage.Job{
		ID:             1,
		JobCode:        "HR-7",
		Title:          "Talent Partner",
		Department:     "People",
		CreatedDate:    "2026-03-14",
		ClosedDate:     "2026-04-30",
		RequiredSkills: "sql, excel, recruitment",
		Status:         "Open",
	}
	if *job != want {
		t.Fatalf("expected %+v, got %+v", want, *job)
	}

	jobs, _ := store.ListJobs(ctx)
	if len(jobs) != 1 {
		t.Fatalf("expected one stored job, got %d", len(jobs))
	}
}

func TestCreateJobValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   NewJob
		err  error
	}{
		{name: "missing code", in: NewJob{Title: "Recruiter"}, err: ErrJobFieldsRequired},
		{name: "blank title", in: NewJob{JobCode: "HR-1", Title: "   "}, err: ErrJobFieldsRequired},
		{name: "bad date", in: NewJob{JobCode: "HR-1", Title: "Recruiter", CreatedDate: "14/03/2026"}, err: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, _ := newTestService(t)
			if _, err := svc.CreateJob(context.Background(), tt.in); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if jobs, _ := store.ListJobs(context.Background()); len(jobs) != 0 {
				t.Fatalf("expected nothing written, got %d jobs", len(jobs))
			}
		})
	}
}

func TestDeleteJob(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()

	busy := mustCreateJob(t, svc, "sql")
	idle := mustCreateJob(t, svc, "sql")
	if err := store.SaveCandidate(ctx, &storage.Candidate{Email: "a@b.com", JobID: busy.ID, Stage: storage.StageApplied}); err != nil {
		t.Fatalf("seeding candidate: %v", err)
	}

	if err := svc.DeleteJob(ctx, busy.ID); !errors.Is(err, ErrJobHasCandidates) {
		t.Fatalf("expected ErrJobHasCandidates, got %v", err)
	}
	if err := svc.DeleteJob(ctx, idle.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteJob(ctx, idle.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	jobs, _ := svc.ListJobs(ctx)
	if len(jobs) != 1 || jobs[0].ID != busy.ID {
		t.Fatalf("expected only the busy job to remain, got %+v", jobs)
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	job := &storage.Job{ID: 3, RequiredSkills: "sql, excel, recruitment"}

	text := "jane doe\njane@example.com | +91 9876543210\nexperienced with excel and sql reporting"
	p := svc.Assemble(text, job)

	if p.Name != "Jane Doe" || p.Email != "jane@example.com" || p.Phone != "+91 9876543210" {
		t.Fatalf("unexpected fields: %+v", p)
	}
	if p.Skills != "excel, sql" {
		t.Fatalf("unexpected skills %q", p.Skills)
	}
	if p.Decision != storage.StageInterview || p.MatchPct != 66.7 {
		t.Fatalf("unexpected decision %s %.1f", p.Decision, p.MatchPct)
	}
	if p.JobID != 3 {
		t.Fatalf("expected job id 3, got %d", p.JobID)
	}
}

func TestIngestResumesSkipsMissingEmail(t *testing.T) {
	t.Parallel()

	svc, store, rec := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "sql, excel")

	files := []ResumeFile{
		{Filename: "jane.docx", Data: cvtest.Docx(t, "Jane Doe", "jane@example.com", "sql and excel")},
		{Filename: "noemail.docx", Data: cvtest.Docx(t, "John Roe", "9876543210", "sql")},
		{Filename: "notes.txt", Data: []byte("jack@example.com sql")},
	}

	previews, res, err := svc.IngestResumes(ctx, job.ID, files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(previews) != 3 {
		t.Fatalf("expected a preview per file, got %d", len(previews))
	}
	if previews[1].Name != "John Roe" || previews[1].Skills != "sql" {
		t.Fatalf("fields should be extracted without an email: %+v", previews[1])
	}
	if previews[2].Email != "" {
		t.Fatalf("unsupported formats must yield empty fields, got %+v", previews[2])
	}

	if len(res.Saved) != 1 || res.Saved[0].Email != "jane@example.com" {
		t.Fatalf("expected only jane to be saved, got %+v", res.Saved)
	}
	if len(res.Skipped) != 2 || res.Skipped[0] != "noemail.docx" || res.Skipped[1] != "notes.txt" {
		t.Fatalf("unexpected skipped list %v", res.Skipped)
	}

	saved, _ := store.ListCandidates(ctx, job.ID)
	if len(saved) != 1 {
		t.Fatalf("expected one stored candidate, got %d", len(saved))
	}
	c := saved[0]
	if c.Stage != storage.StageInterview || c.MatchPct != 100 || c.Name != "Jane Doe" {
		t.Fatalf("unexpected stored candidate %+v", c)
	}

	if len(rec.Events) != 1 || rec.Events[0].Type != events.CandidateCreated || rec.Events[0].JobID != job.ID {
		t.Fatalf("expected one candidate.created event, got %+v", rec.Events)
	}
}

func TestPreviewResumesUnknownJob(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	if _, err := svc.PreviewResumes(context.Background(), 42, nil); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := r
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("writing row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return buf
}

func TestImportSpreadsheet(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "sql, excel")

	buf := workbook(t, [][]interface{}{
		{"Name", " EMAIL ", "Skills", "Stage", "Match_Pct"},
		{"Jane Doe", "jane@example.com", "sql", "Interview", 90},
		{"John Roe", "", "seo", "", ""},
	})

	res, err := svc.ImportSpreadsheet(ctx, job.ID, buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scored {
		t.Fatalf("plain import must report unscored values")
	}

	saved, _ := store.ListCandidates(ctx, job.ID)
	if len(saved) != 2 {
		t.Fatalf("expected two candidates, got %d", len(saved))
	}
	if saved[0].Stage != storage.StageInterview || saved[0].MatchPct != 90 {
		t.Fatalf("sheet values should be trusted, got %+v", saved[0])
	}
	if saved[1].Stage != storage.StageApplied || saved[1].MatchPct != 0 || saved[1].Email != "" {
		t.Fatalf("expected defaults for blank cells, got %+v", saved[1])
	}
}

func TestImportSpreadsheetRescore(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "sql, excel")

	buf := workbook(t, [][]interface{}{
		{"name", "email", "skills", "stage", "match_pct"},
		{"Jane Doe", "jane@example.com", "sql", "Rejected", 5},
	})

	res, err := svc.ImportSpreadsheet(ctx, job.ID, buf, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Scored {
		t.Fatalf("rescored import must say so")
	}

	saved, _ := store.ListCandidates(ctx, job.ID)
	if saved[0].Stage != storage.StageInterview || saved[0].MatchPct != 50 {
		t.Fatalf("expected decision engine values, got %+v", saved[0])
	}
}

func TestImportSpreadsheetRescoreIgnoresCase(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "SQL, Excel")

	buf := workbook(t, [][]interface{}{
		{"name", "email", "skills"},
		{"Jane Doe", "jane@example.com", "SQL, Excel"},
	})

	if _, err := svc.ImportSpreadsheet(ctx, job.ID, buf, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, _ := store.ListCandidates(ctx, job.ID)
	if len(saved) != 1 || saved[0].Stage != storage.StageInterview || saved[0].MatchPct != 100 {
		t.Fatalf("expected a full match regardless of case, got %+v", saved)
	}
	if saved[0].Skills != "SQL, Excel" {
		t.Fatalf("sheet skills should be stored as given, got %q", saved[0].Skills)
	}
}

func TestImportSpreadsheetRejectsBadRowsBeforeWriting(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "sql")

	buf := workbook(t, [][]interface{}{
		{"name", "stage", "match_pct"},
		{"Jane Doe", "Interview", 80},
		{"John Roe", "Offer", 10},
	})

	if _, err := svc.ImportSpreadsheet(ctx, job.ID, buf, false); !errors.Is(err, ErrInvalidSheet) {
		t.Fatalf("expected ErrInvalidSheet for an unknown stage, got %v", err)
	}
	if n, _ := store.CountCandidates(ctx, job.ID); n != 0 {
		t.Fatalf("expected no partial import, got %d rows", n)
	}
}

func TestDashboardAndShortlist(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	job := mustCreateJob(t, svc, "sql")
	other := mustCreateJob(t, svc, "excel")

	seed := []storage.Candidate{
		{Name: "A", Email: "a@x.com", Stage: storage.StageInterview, MatchPct: 100, JobID: job.ID},
		{Name: "B", Email: "b@x.com", Stage: storage.StageRejected, JobID: job.ID},
		{Name: "C", Email: "c@x.com", Stage: storage.StageInterview, MatchPct: 50, JobID: job.ID},
		{Name: "D", Email: "d@x.com", Stage: storage.StageInterview, MatchPct: 75, JobID: other.ID},
	}
	for i := range seed {
		if err := store.SaveCandidate(ctx, &seed[i]); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	d, err := svc.Dashboard(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Total != 3 || d.Interview != 2 || d.Rejected != 1 {
		t.Fatalf("unexpected stats %+v", d)
	}
	want := []StageCount{{Stage: storage.StageInterview, Candidates: 2}, {Stage: storage.StageRejected, Candidates: 1}}
	if len(d.Funnel) != len(want) || d.Funnel[0] != want[0] || d.Funnel[1] != want[1] {
		t.Fatalf("unexpected funnel %+v", d.Funnel)
	}

	list, err := svc.Shortlist(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[0].JobCode != "HR-1" || list[0].Title != "Recruiter" {
		t.Fatalf("unexpected shortlist %+v", list)
	}
}
