package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"applicant-tracker/internal/recruit"
	"applicant-tracker/internal/storage"

	"github.com/olekukonko/tablewriter"
)

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// maxBar is the width of a funnel bar holding every candidate.
const maxBar = 30

// bar draws n out of total as a block bar; any non-zero count gets one block.
func bar(n, total int) string {
	if n <= 0 || total <= 0 {
		return ""
	}
	width := n * maxBar / total
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func renderJobs(w io.Writer, jobs []storage.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "no jobs")
		return
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Code", "Title", "Department", "Created", "Closes", "Required skills", "Status"})
	for _, j := range jobs {
		t.Append([]string{
			strconv.FormatInt(j.ID, 10), j.JobCode, j.Title, j.Department,
			j.CreatedDate, j.ClosedDate, j.RequiredSkills, j.Status,
		})
	}
	t.Render()
}

func renderPreviews(w io.Writer, previews []recruit.Preview) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"File", "Name", "Email", "Phone", "Skills", "Match", "Decision"})
	for _, p := range previews {
		email := p.Email
		if !p.Storable() {
			email = "(none, will be skipped)"
		}
		t.Append([]string{p.Filename, p.Name, email, p.Phone, p.Skills, pct(p.MatchPct), string(p.Decision)})
	}
	t.Render()
}

func renderCandidates(w io.Writer, cands []storage.Candidate) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Name", "Email", "Phone", "Skills", "Stage", "Match"})
	for _, c := range cands {
		t.Append([]string{
			strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.Phone, c.Skills, string(c.Stage), pct(c.MatchPct),
		})
	}
	t.Render()
}

func renderShortlist(w io.Writer, entries []storage.ShortlistEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no candidates shortlisted for interview")
		return
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Job", "Title", "Name", "Email", "Match", "Skills"})
	for _, e := range entries {
		t.Append([]string{e.JobCode, e.Title, e.Name, e.Email, pct(e.MatchPct), e.Skills})
	}
	t.Render()
}

func renderDashboard(w io.Writer, d *recruit.Dashboard) {
	fmt.Fprintf(w, "%s - %s (%s)\n", d.Job.JobCode, d.Job.Title, d.Job.Status)
	fmt.Fprintf(w, "total: %d  interview: %d  rejected: %d\n", d.Total, d.Interview, d.Rejected)
	if d.Total == 0 {
		return
	}

	funnel := tablewriter.NewWriter(w)
	funnel.SetHeader([]string{"Stage", "Candidates", ""})
	for _, s := range d.Funnel {
		funnel.Append([]string{string(s.Stage), strconv.Itoa(s.Candidates), bar(s.Candidates, d.Total)})
	}
	funnel.Render()

	renderCandidates(w, d.Candidates)
}
