package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const testIndex = `<!DOCTYPE html>
<html>
<head><title>Resume Analyzer</title></head>
<body>
<div id="app"></div>
<script>
window.GEMINI_API_KEY = "API_KEY_PLACEHOLDER";
window.JSEARCH_API_KEY = "JSEARCH_KEY_PLACEHOLDER";
</script>
</body>
</html>
`

type fakeExtractor struct {
	skills []string
	err    error
	got    string
}

func (f *fakeExtractor) Extract(_ context.Context, resumeText string) ([]string, error) {
	f.got = resumeText
	return f.skills, f.err
}

type fakeSearcher struct {
	jobs        []types.JobSummary
	err         error
	gotSkills   []string
	gotCountry  string
	searchCalls int
}

func (f *fakeSearcher) Search(_ context.Context, skills []string, country string) ([]types.JobSummary, error) {
	f.searchCalls++
	f.gotSkills = skills
	f.gotCountry = country
	return f.jobs, f.err
}

// newTestConfig returns a config rooted at a temp static dir holding the test
// index page.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(testIndex), 0o644))

	cfg := &config.Config{
		Environment:     "test",
		LogLevel:        "debug",
		UpstreamTimeout: 30,
	}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 5000
	cfg.Server.StaticDir = dir
	cfg.Server.IndexFile = "index.html"
	cfg.Server.ShutdownTimeout = 5
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, deps Deps) *Server {
	t.Helper()
	return New(cfg, zaptest.NewLogger(t), deps)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
