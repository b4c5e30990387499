package cv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Parser extracts plain text from uploaded CV files.
type Parser struct {
	uploadsDir string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// AllowedFile reports whether the filename has a supported extension.
func AllowedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// ParseUpload saves the uploaded file and extracts its text. docconv is
// tried first; when it fails (it shells out to external tools for some
// formats) the pure-Go extractors take over. An empty result means the
// file yielded no usable text, which the caller treats as "no upload".
func (p *Parser) ParseUpload(filename string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedFile(filename) {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}
	filePath := filepath.Join(p.uploadsDir, filepath.Base(filename))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if ext == ".txt" {
		return strings.TrimSpace(string(data)), nil
	}

	if res, err := docconv.ConvertPath(filePath); err == nil && strings.TrimSpace(res.Body) != "" {
		return strings.TrimSpace(res.Body), nil
	}

	return ExtractText(ext, data), nil
}
