package api

import (
	"errors"
	"net/http"
	"time"

	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/logger"
)

const (
	msgNoFile   = "❌ No file uploaded"
	msgNoText   = "❌ Could not extract text from PDF"
	msgTooLarge = "❌ File too large"
)

// AnalyzeCVHandler extracts fields from an uploaded CV and recommends employers
// @Summary Analyze a CV
// @Description Extract contact info, skills, experience, education and entities from a PDF CV and recommend employers
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file (PDF)"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Router /analyze_cv [post]
func (a *API) AnalyzeCVHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	log := logger.Ctx(r.Context())
	startTime := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusBadRequest, msgTooLarge)
			return
		}
		// A request without a multipart body has no file either.
		writeError(w, r, http.StatusBadRequest, msgNoFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	parsed, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		if cv.IsInputError(err) {
			log.Info().Err(err).Str("filename", header.Filename).Msg("rejected upload")
			writeError(w, r, http.StatusBadRequest, msgNoText)
			return
		}
		log.Error().Err(err).Str("filename", header.Filename).Msg("failed to read upload")
		writeError(w, r, http.StatusInternalServerError, "failed to read upload")
		return
	}

	log.Info().
		Str("filename", parsed.Filename).
		Int("pages", parsed.Pages).
		Int("text_len", len(parsed.FullText)).
		Msg("CV parsed")

	analysis := a.extractor.Analyze(r.Context(), parsed.FullText)
	recs := a.jobs.Recommend(analysis.Skills.Value())

	log.Info().
		Dur("elapsed", time.Since(startTime)).
		Bool("recommended", recs.IsFound()).
		Msg("CV analyzed")

	writeJSON(w, r, http.StatusOK, newAnalyzeResponse(parsed, analysis, recs))
}
