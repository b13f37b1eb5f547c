package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.fail(w, r, &ErrNotConfigured{Service: llm.ServiceName}, "Failed to extract skills")
		return
	}

	var req types.SkillExtractionRequest
	if err := types.Decode(r.Body, &req); err != nil {
		s.fail(w, r, err, "Failed to extract skills")
		return
	}

	skills, err := s.extractor.Extract(r.Context(), req.ResumeText)
	if err != nil {
		s.fail(w, r, err, "Failed to extract skills")
		return
	}
	if skills == nil {
		skills = []string{}
	}

	s.logger.Debug("skills extracted", zap.Int("count", len(skills)))
	WriteJSON(w, http.StatusOK, types.SkillExtractionResponse{Skills: skills})
}

// fail maps err to a status and JSON error body. Client input errors are not
// logged here; the access log already records them.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := HTTPStatus(err)
	message := ErrorMessage(err, fallback)

	if !isClientError(err) {
		s.logger.Warn("request failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}

	WriteError(w, status, message)
}

func isClientError(err error) bool {
	switch classify(err).(type) {
	case *types.DecodeError, *types.ValidationError, *ErrNotConfigured:
		return true
	default:
		return false
	}
}
