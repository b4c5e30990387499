package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	UploadsDir string

	// AI configuration
	AIProvider string // "openai", "groq", "gemini", or "none"
	AIModel    string // provider-specific model name
	AIAPIKey   string

	LogJSON bool
	Debug   bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "none"
	}

	// Key lookup follows the provider; an empty key disables the AI path
	// and the rule-based critic takes over.
	apiKey := ""
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		Port:       port,
		UploadsDir: uploadsDir,
		AIProvider: provider,
		AIModel:    os.Getenv("AI_MODEL"),
		AIAPIKey:   apiKey,
		LogJSON:    os.Getenv("LOG_JSON") == "true",
		Debug:      os.Getenv("DEBUG") == "true",
	}
}
