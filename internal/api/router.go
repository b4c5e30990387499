package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// CV review
	mux.HandleFunc("/api/analyze", a.AnalyzeHandler)

	// Matching & assessment
	mux.HandleFunc("/api/match", a.MatchHandler)
	mux.HandleFunc("/api/skills", a.SkillsHandler)

	// Personal statement
	mux.HandleFunc("/api/statement", a.StatementHandler)

	return mux
}
