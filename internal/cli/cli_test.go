package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"applicant-tracker/internal/cv/cvtest"
	"applicant-tracker/internal/objectstore"
	"applicant-tracker/internal/recruit"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

func TestReadDirKeepsResumesInNameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, data []byte) {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	write("b.pdf", []byte("%PDF"))
	write("a.docx", cvtest.Docx(t, "a@b.com"))
	write("notes.txt", []byte("ignored"))
	if err := os.Mkdir(filepath.Join(dir, "nested.docx"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := readDir(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 || files[0].Filename != "a.docx" || files[1].Filename != "b.pdf" {
		t.Fatalf("unexpected files %+v", files)
	}
}

func TestReadDirMissing(t *testing.T) {
	t.Parallel()

	if _, err := readDir(filepath.Join(t.TempDir(), "absent"), zap.NewNop()); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

type fakeSource struct {
	objects map[string][]byte
	keys    []string
}

func (f *fakeSource) List(_ context.Context, _ string) ([]string, error) {
	return f.keys, nil
}

func (f *fakeSource) Get(_ context.Context, key string) (*objectstore.Object, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return &objectstore.Object{Key: key, Data: data}, nil
}

func TestReadBucketFiltersFormats(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		keys: []string{"cv/jane.docx", "cv/readme.md", "cv/john.PDF"},
		objects: map[string][]byte{
			"cv/jane.docx": []byte("docx"),
			"cv/john.PDF":  []byte("pdf"),
		},
	}
	files, err := readBucket(context.Background(), src, "cv/", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 || files[0].Filename != "cv/jane.docx" || string(files[1].Data) != "pdf" {
		t.Fatalf("unexpected files %+v", files)
	}
}

func TestRenderPreviewsMarksSkipped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderPreviews(&buf, []recruit.Preview{
		{Filename: "jane.docx", Email: "jane@example.com", MatchPct: 66.7, Decision: storage.StageInterview},
		{Filename: "john.docx", Decision: storage.StageRejected},
	})
	out := buf.String()
	for _, want := range []string{"jane@example.com", "66.7%", "Interview", "will be skipped"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %q:\n%s", want, out)
		}
	}
	if n := countStorable([]recruit.Preview{{Email: "a@b.com"}, {}}); n != 1 {
		t.Fatalf("expected 1 storable preview, got %d", n)
	}
}

func TestRenderEmptyShortlist(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderShortlist(&buf, nil)
	if !strings.Contains(buf.String(), "no candidates") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJobCreateCommand(t *testing.T) {
	t.Setenv("ATS_STORE", "memory")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"job", "create", "--code", "HR-1", "--title", "Recruiter", "--skills", "sql"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "created job 1 (HR-1)") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestJobCreateCommandRequiresTitle(t *testing.T) {
	t.Setenv("ATS_STORE", "memory")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"job", "create", "--code", "HR-1"})

	if err := cmd.Execute(); !errors.Is(err, recruit.ErrJobFieldsRequired) {
		t.Fatalf("expected ErrJobFieldsRequired, got %v", err)
	}
}

func TestResumeIngestNeedsOneSource(t *testing.T) {
	t.Setenv("ATS_STORE", "memory")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"resume", "ingest", "--job", "1"})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "--dir or --bucket") {
		t.Fatalf("expected a source error, got %v", err)
	}
}

func TestRenderDashboardDrawsFunnelBars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderDashboard(&buf, &recruit.Dashboard{
		Job:       storage.Job{JobCode: "HR-1", Title: "Recruiter", Status: storage.JobStatusOpen},
		Total:     3,
		Interview: 2,
		Rejected:  1,
		Funnel: []recruit.StageCount{
			{Stage: storage.StageInterview, Candidates: 2},
			{Stage: storage.StageRejected, Candidates: 1},
		},
		Candidates: []storage.Candidate{{ID: 1, Name: "Jane Doe", Stage: storage.StageInterview}},
	})

	out := buf.String()
	if !strings.Contains(out, strings.Repeat("█", 20)) || !strings.Contains(out, strings.Repeat("█", 10)) {
		t.Fatalf("expected funnel bars in output:\n%s", out)
	}
	if !strings.Contains(out, "total: 3  interview: 2  rejected: 1") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, total, width int
	}{
		{n: 0, total: 5, width: 0},
		{n: 5, total: 5, width: maxBar},
		{n: 1, total: 100, width: 1},
		{n: 1, total: 2, width: maxBar / 2},
	}
	for _, tt := range tests {
		if got := len([]rune(bar(tt.n, tt.total))); got != tt.width {
			t.Fatalf("bar(%d, %d): expected width %d, got %d", tt.n, tt.total, tt.width, got)
		}
	}
}
