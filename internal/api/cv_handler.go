package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"applicant-tracker/internal/recruit"
	"applicant-tracker/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type uploadResponse struct {
	BatchID          string              `json:"batch_id"`
	JobID            int64               `json:"job_id"`
	Previews         []recruit.Preview   `json:"previews"`
	Saved            []storage.Candidate `json:"saved,omitempty"`
	Skipped          []string            `json:"skipped,omitempty"`
	PreviewOnly      bool                `json:"preview_only"`
	ProcessingTimeMS int64               `json:"processing_time_ms"`
}

// ResumeUploadHandler parses, scores and stores uploaded resumes
// @Summary Upload resumes for a job
// @Description Upload PDF/DOCX resumes. Each file is parsed and scored against the job's required skills.
// @Description With preview=true nothing is stored. Otherwise resumes without an email are skipped.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Job ID"
// @Param files formData file true "Resume files (PDF or DOCX)"
// @Param preview query bool false "Only parse and score"
// @Success 200 {object} uploadResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /jobs/{id}/resumes [post]
func (a *API) ResumeUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := jobID(r)
	if !ok {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	startTime := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)
	if err := r.ParseMultipartForm(a.maxUpload); err != nil {
		http.Error(w, fmt.Sprintf("file too large or invalid (max %d bytes)", a.maxUpload), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["file"]
	}
	if len(headers) == 0 {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}

	files := make([]recruit.ResumeFile, 0, len(headers))
	for _, h := range headers {
		data, err := readPart(h)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to read %s", h.Filename), http.StatusBadRequest)
			return
		}
		files = append(files, recruit.ResumeFile{Filename: h.Filename, Data: data})
	}

	batchID := uuid.NewString()
	log := a.logger.With(zap.String("batch_id", batchID), zap.Int64("job_id", id))
	log.Info("resume batch received", zap.Int("files", len(files)))

	resp := uploadResponse{
		BatchID:     batchID,
		JobID:       id,
		PreviewOnly: r.URL.Query().Get("preview") == "true",
	}

	if resp.PreviewOnly {
		previews, err := a.service.PreviewResumes(r.Context(), id, files)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		resp.Previews = previews
	} else {
		previews, res, err := a.service.IngestResumes(r.Context(), id, files)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		resp.Previews = previews
		resp.Saved = res.Saved
		resp.Skipped = res.Skipped
	}

	resp.ProcessingTimeMS = time.Since(startTime).Milliseconds()
	log.Info("resume batch processed", zap.Int64("processing_time_ms", resp.ProcessingTimeMS))
	writeJSON(w, http.StatusOK, resp)
}

func readPart(h *multipart.FileHeader) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// ImportHandler loads candidates from a spreadsheet
// @Summary Import candidates from XLSX
// @Description Columns name, email, phone, skills, stage and match_pct are stored as given
// @Description (scored=false). With rescore=true stage and match_pct come from the decision engine.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Job ID"
// @Param file formData file true "XLSX workbook"
// @Param rescore query bool false "Recompute stage and match_pct"
// @Success 200 {object} recruit.ImportResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /jobs/{id}/import [post]
func (a *API) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := jobID(r)
	if !ok {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)
	if err := r.ParseMultipartForm(a.maxUpload); err != nil {
		http.Error(w, fmt.Sprintf("file too large or invalid (max %d bytes)", a.maxUpload), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := a.service.ImportSpreadsheet(r.Context(), id, file, r.URL.Query().Get("rescore") == "true")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
