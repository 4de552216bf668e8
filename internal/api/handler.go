package api

import (
	"encoding/json"
	"net/http"

	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/logger"
	"cv-analyzer/internal/recommend"
)

const defaultMaxUpload = 10 << 20

type API struct {
	parser         cv.TextExtractor
	extractor      *cv.Extractor
	jobs           *recommend.Engine // employers for /analyze_cv
	dashboardJobs  *recommend.Engine // employers for /recommend
	maxUploadBytes int64
}

type Options struct {
	Parser         cv.TextExtractor
	Extractor      *cv.Extractor
	Jobs           *recommend.Engine
	DashboardJobs  *recommend.Engine
	MaxUploadBytes int64
}

func NewAPI(opts Options) *API {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUpload
	}
	if opts.DashboardJobs == nil {
		opts.DashboardJobs = opts.Jobs
	}
	return &API{
		parser:         opts.Parser,
		extractor:      opts.Extractor,
		jobs:           opts.Jobs,
		dashboardJobs:  opts.DashboardJobs,
		maxUploadBytes: opts.MaxUploadBytes,
	}
}

// HomeHandler reports that the service is up
// @Summary Service status
// @Tags status
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (a *API) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, r, http.StatusOK, MessageResponse{Message: "✅ API is running!"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Ctx(r.Context()).Error().Err(err).Msg("failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, ErrorResponse{Error: msg})
}
