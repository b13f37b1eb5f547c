package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Placeholder tokens substituted into the index page, and the values used
// when the matching key is unset.
const (
	GeminiKeyPlaceholder  = "API_KEY_PLACEHOLDER"
	JSearchKeyPlaceholder = "JSEARCH_KEY_PLACEHOLDER"

	GeminiKeyFallback  = "your-gemini-api-key-here"
	JSearchKeyFallback = "your-jsearch-api-key-here"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.cfg.Server.StaticDir, s.cfg.Server.IndexFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to read index page", zap.String("path", path), zap.Error(err))
		http.Error(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page := RenderIndex(string(content), s.cfg.Gemini.APIKey, s.cfg.JSearch.APIKey)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(page)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// RenderIndex substitutes the API key placeholders, Gemini first. Unset keys
// are replaced by their fallback strings.
func RenderIndex(page, geminiKey, jsearchKey string) string {
	if geminiKey == "" {
		geminiKey = GeminiKeyFallback
	}
	if jsearchKey == "" {
		jsearchKey = JSearchKeyFallback
	}

	page = strings.ReplaceAll(page, GeminiKeyPlaceholder, geminiKey)
	return strings.ReplaceAll(page, JSearchKeyPlaceholder, jsearchKey)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	s.static.ServeHTTP(w, r)
}
