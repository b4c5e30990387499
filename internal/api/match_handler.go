package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"careerhub/internal/render"
)

type matchRequest struct {
	Skills string `json:"skills" validate:"required"`
}

type skillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1"`
}

// MatchHandler matches a comma-separated skill list against job roles.
// @Summary Match skills to jobs
// @Description Match a comma-separated list of skills against the job role catalogue
// @Tags match
// @Accept json
// @Produce json
// @Param request body matchRequest true "Skills (comma-separated)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "skills are required")
		return
	}

	matches := a.matcher.MatchSkillList(req.Skills)
	a.log.Info("job matching complete", zap.Int("matches", len(matches)))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"output":  render.Matches(matches),
	})
}

// SkillsHandler assesses a set of pre-selected skill tokens.
// @Summary Assess skills
// @Description Assess selected skills: recommendations, learning path and job matches
// @Tags match
// @Accept json
// @Produce json
// @Param request body skillsRequest true "Selected skills"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /skills [post]
func (a *API) SkillsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req skillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "select at least one skill")
		return
	}

	assessment := a.matcher.AssessSkills(req.Skills)
	a.log.Info("skills assessment complete",
		zap.Int("skills", len(req.Skills)),
		zap.Int("job_matches", len(assessment.JobMatches)))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessment": assessment,
		"output":     render.Assessment(assessment),
	})
}
