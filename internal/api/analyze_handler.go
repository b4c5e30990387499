package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerhub/internal/cv"
	"careerhub/internal/render"
	"careerhub/internal/review"
)

type analyzeRequest struct {
	CVText         string `validate:"required,min=50"`
	JobDescription string
}

// AnalyzeHandler reviews a CV submitted as text, file upload, or both.
// @Summary Analyze a CV
// @Description Review CV text and/or an uploaded PDF/DOCX against an optional job description. Uses the configured AI provider when available, otherwise a rule-based analysis.
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param cv_text formData string false "CV text"
// @Param job_description formData string false "Job description"
// @Param cv_file formData file false "CV file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /analyze [post]
func (a *API) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	startTime := time.Now()
	analysisID := uuid.New().String()
	log := a.log.With(zap.String("analysis_id", analysisID))

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	typedText := strings.TrimSpace(r.FormValue("cv_text"))
	jobDescription := strings.TrimSpace(r.FormValue("job_description"))

	// Uploads degrade silently: extraction failure just means no file text.
	uploadedText := ""
	if file, header, err := r.FormFile("cv_file"); err == nil {
		defer file.Close()
		if !cv.AllowedFile(header.Filename) {
			writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, TXT)")
			return
		}
		uploadedText, err = a.parser.ParseUpload(header.Filename, file)
		if err != nil {
			log.Warn("CV extraction failed", zap.Error(err))
			uploadedText = ""
		} else {
			log.Info("CV file parsed", zap.String("filename", header.Filename), zap.Int("text_length", len(uploadedText)))
		}
	}

	combined := typedText
	if uploadedText != "" {
		combined = strings.TrimSpace(uploadedText + "\n\n" + typedText)
	}

	req := analyzeRequest{CVText: combined, JobDescription: jobDescription}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "CV content is required and must be at least 50 characters")
		return
	}

	response := map[string]interface{}{
		"analysis_id": analysisID,
	}

	if a.assistant != nil {
		reply, err := a.assistant.Review(r.Context(), combined, jobDescription)
		if err == nil {
			response["method"] = "ai"
			response["output"] = reply
			response["processing_time_ms"] = time.Since(startTime).Milliseconds()
			log.Info("AI analysis complete", zap.Int("reply_length", len(reply)))
			writeJSON(w, http.StatusOK, response)
			return
		}
		// fail closed: any provider error falls back to the rule-based path
		log.Warn("AI analysis unavailable, falling back to rule-based analysis", zap.Error(err))
	}

	critique := review.Analyze(combined)
	response["method"] = "fallback"
	response["critique"] = critique
	response["output"] = render.Critique(critique)
	response["processing_time_ms"] = time.Since(startTime).Milliseconds()

	log.Info("rule-based analysis complete",
		zap.Int("strengths", len(critique.Strengths)),
		zap.Int("weaknesses", len(critique.Weaknesses)))

	writeJSON(w, http.StatusOK, response)
}
