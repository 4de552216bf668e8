package api

import (
	"encoding/json"
	"net/http"

	"cv-analyzer/internal/types"
)

// RecommendHandler runs the experience-aware recommendation over the dashboard employers
// @Summary Recommend employers
// @Description Match skills and years of experience against the dashboard employer list
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Candidate skills and experience"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommend [post]
func (a *API) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ExperienceYears < 0 {
		writeError(w, r, http.StatusBadRequest, "experience_years must not be negative")
		return
	}

	recs := a.dashboardJobs.RecommendWithExperience(req.Skills, req.ExperienceYears)
	writeJSON(w, r, http.StatusOK, RecommendResponse{Recommendations: recs.Or(types.NoSuitableJobs)})
}
