package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"careerhub/internal/ai"
	"careerhub/internal/ai/gemini"
	"careerhub/internal/ai/openai"
	"careerhub/internal/config"
	"careerhub/internal/cv"
	"careerhub/internal/match"
)

type API struct {
	log      *zap.Logger
	parser   *cv.Parser
	matcher  *match.Matcher
	validate *validator.Validate

	// assistant is nil when no AI provider is configured; every handler
	// that uses it must degrade to the rule-based path.
	assistant ai.Assistant
}

func NewAPI(ctx context.Context, cfg *config.Config, log *zap.Logger) (*API, error) {
	matcher, err := match.NewMatcher(match.DefaultTaxonomy())
	if err != nil {
		return nil, err
	}

	var assistant ai.Assistant
	if cfg.AIAPIKey != "" {
		switch cfg.AIProvider {
		case "openai", "groq":
			assistant = openai.NewClient(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
		case "gemini":
			assistant, err = gemini.NewClient(ctx, cfg.AIAPIKey, cfg.AIModel)
			if err != nil {
				return nil, err
			}
		}
	}
	if assistant == nil {
		log.Info("no AI provider configured, using rule-based analysis only")
	} else {
		log.Info("AI provider configured", zap.String("provider", cfg.AIProvider))
	}

	return &API{
		log:       log,
		parser:    cv.NewParser(cfg.UploadsDir),
		matcher:   matcher,
		validate:  validator.New(),
		assistant: assistant,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
