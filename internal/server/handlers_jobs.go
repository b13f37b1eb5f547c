package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/jsearch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		s.fail(w, r, &ErrNotConfigured{Service: jsearch.ServiceName}, "Failed to search jobs")
		return
	}

	var req types.JobSearchRequest
	if err := types.Decode(r.Body, &req); err != nil {
		s.fail(w, r, err, "Failed to search jobs")
		return
	}

	jobs, err := s.searcher.Search(r.Context(), req.Skills, req.CountryCode())
	if err != nil {
		s.fail(w, r, err, "Failed to search jobs")
		return
	}
	if jobs == nil {
		jobs = []types.JobSummary{}
	}

	s.logger.Debug("jobs found", zap.Int("count", len(jobs)), zap.String("country", req.CountryCode()))
	WriteJSON(w, http.StatusOK, types.JobSearchResponse{Jobs: jobs})
}
