package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// maxUploadSize bounds resume uploads.
const maxUploadSize = 10 << 20 // 10 MiB

// AnalyzeRequest represents the request body for /analyze. Both fields are
// optional; missing text is treated as the empty string.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// handleAnalyze runs the analysis pipeline on JSON text inputs.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeUpload runs the analysis pipeline on an uploaded resume file
// plus a job description form field. Document decoding is best effort and
// never fails the request.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_file is required")
		return
	}
	defer func() { _ = file.Close() }()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume_file: "+err.Error())
		return
	}

	resumeText := ingestion.ExtractText(header.Filename, raw)
	jobDescription := r.FormValue("job_description")

	result := s.analyzer.Analyze(r.Context(), resumeText, jobDescription)
	s.jsonResponse(w, http.StatusOK, result)
}
