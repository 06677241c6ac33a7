package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Jobs
	mux.HandleFunc("/api/jobs", a.JobsHandler)
	mux.HandleFunc("/api/jobs/{id}", a.JobHandler)

	// Candidates of a job
	mux.HandleFunc("/api/jobs/{id}/resumes", a.ResumeUploadHandler)
	mux.HandleFunc("/api/jobs/{id}/import", a.ImportHandler)

	// Reports
	mux.HandleFunc("/api/jobs/{id}/dashboard", a.DashboardHandler)
	mux.HandleFunc("/api/shortlist", a.ShortlistHandler)

	return mux
}
