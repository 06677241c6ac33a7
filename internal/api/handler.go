package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"applicant-tracker/internal/recruit"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

type API struct {
	service   *recruit.Service
	logger    *zap.Logger
	maxUpload int64 // bytes accepted per multipart request
}

func NewAPI(service *recruit.Service, maxUpload int64, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	return &API{
		service:   service,
		logger:    logger.Named("api"),
		maxUpload: maxUpload,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to status codes. Anything unexpected is
// logged and reported as a 500 without details.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recruit.ErrJobFieldsRequired), errors.Is(err, recruit.ErrInvalidDate),
		errors.Is(err, recruit.ErrInvalidSheet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, recruit.ErrJobNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, recruit.ErrJobHasCandidates):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		a.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func jobID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// JobsHandler lists or creates jobs
// @Summary List or create jobs
// @Description GET lists every job. POST creates an open job; job_code and title are mandatory.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body recruit.NewJob false "Job to create (POST only)"
// @Success 200 {array} storage.Job
// @Success 201 {object} storage.Job
// @Failure 400 {string} string
// @Router /jobs [get]
// @Router /jobs [post]
func (a *API) JobsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		jobs, err := a.service.ListJobs(r.Context())
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		if jobs == nil {
			jobs = []storage.Job{}
		}
		writeJSON(w, http.StatusOK, jobs)

	case http.MethodPost:
		var in recruit.NewJob
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		job, err := a.service.CreateJob(r.Context(), in)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, job)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// JobHandler reads or deletes one job
// @Summary Get or delete a job
// @Description DELETE is refused with 409 while candidates reference the job.
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} storage.Job
// @Success 204
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Router /jobs/{id} [get]
// @Router /jobs/{id} [delete]
func (a *API) JobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r)
	if !ok {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		job, err := a.service.GetJob(r.Context(), id)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, job)

	case http.MethodDelete:
		if err := a.service.DeleteJob(r.Context(), id); err != nil {
			a.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// DashboardHandler returns hiring statistics of a job
// @Summary Job dashboard
// @Description Totals, per-stage funnel and candidate details for one job
// @Tags reports
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} recruit.Dashboard
// @Failure 404 {string} string
// @Router /jobs/{id}/dashboard [get]
func (a *API) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := jobID(r)
	if !ok {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	d, err := a.service.Dashboard(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ShortlistHandler lists candidates selected for interview
// @Summary Interview shortlist
// @Tags reports
// @Produce json
// @Success 200 {array} storage.ShortlistEntry
// @Router /shortlist [get]
func (a *API) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	list, err := a.service.Shortlist(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
