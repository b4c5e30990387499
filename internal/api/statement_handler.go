package api

import (
	"encoding/json"
	"net/http"

	"careerhub/internal/statement"
)

type statementRequest struct {
	Goal string `json:"goal" validate:"required"`
}

// StatementHandler generates a personal statement from a career goal.
// @Summary Generate a personal statement
// @Description Generate a templated personal statement from free-text career goal
// @Tags statement
// @Accept json
// @Produce json
// @Param request body statementRequest true "Career goal"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /statement [post]
func (a *API) StatementHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req statementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "career goal is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"statement": statement.Generate(req.Goal),
	})
}
