package server

import (
	"net/http"

	"github.com/jonathan/ats-scanner/internal/types"
)

// handleKeywords extracts categorized keywords from a job description
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.KeywordsRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := s.checkDocumentSize("job_description", req.JobDescription); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	report, err := s.analyzer.ScanKeywords(req.JobDescription)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleTarget matches a resume against a job description
func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	var req types.TargetRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := s.checkDocumentSize("job_description", req.JobDescription); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := s.checkDocumentSize("resume", req.Resume); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	report, err := s.analyzer.TargetResume(req.JobDescription, req.Resume)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleScore scores a resume on its own
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := s.checkDocumentSize("resume", req.Resume); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	report, err := s.analyzer.ScoreResume(req.Resume)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}
