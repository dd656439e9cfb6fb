package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/jdtext"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	Resume         json.RawMessage `json:"resume"`
	JobDescription string          `json:"job_description,omitempty"`
}

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Mode            string   `json:"mode"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Feedback        string   `json:"feedback"`
}

// handleScore scores a resume without persisting the result
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	result, mode, ok := s.scoreFromRequest(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse(result, mode))
}

// handleScoreResume scores a resume and stores the result under the given
// resume id
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Score storage is not configured")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	result, mode, ok := s.scoreFromRequest(w, r)
	if !ok {
		return
	}

	record, err := s.db.SaveScoreResult(r.Context(), resumeID, mode, &result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store score result: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, record)
}

// handleListScores returns all stored scores for a resume, newest first
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Score storage is not configured")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	records, err := s.db.ListScoreResults(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list score results: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id": resumeID,
		"scores":    records,
	})
}

// handleGetScore returns a single stored score by id
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Score storage is not configured")
		return
	}

	scoreID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score id")
		return
	}

	record, err := s.db.GetScoreResult(r.Context(), scoreID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Score result not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get score result: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// scoreFromRequest decodes and validates a ScoreRequest and runs the scorer.
// On failure it writes the error response and returns ok=false.
func (s *Server) scoreFromRequest(w http.ResponseWriter, r *http.Request) (types.ScoreResult, string, bool) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return types.ScoreResult{}, "", false
	}

	if len(req.Resume) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return types.ScoreResult{}, "", false
	}

	if err := schemas.ValidateResumeBytes(req.Resume); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
			return types.ScoreResult{}, "", false
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to validate resume: "+err.Error())
		return types.ScoreResult{}, "", false
	}

	var resume types.ResumeRecord
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return types.ScoreResult{}, "", false
	}
	resume.Normalize()

	if err := resume.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return types.ScoreResult{}, "", false
	}

	// Job descriptions may arrive as raw HTML from a job board
	jobDescription, err := jdtext.Normalize(req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job description: "+err.Error())
		return types.ScoreResult{}, "", false
	}

	mode := db.ScoreModeJD
	if strings.TrimSpace(jobDescription) == "" {
		mode = db.ScoreModeGeneric
	}

	result := ats.CalculateScore(&resume, jobDescription)
	return result, mode, true
}

func scoreResponse(result types.ScoreResult, mode string) ScoreResponse {
	return ScoreResponse{
		Mode:            mode,
		Score:           result.Score,
		MatchedKeywords: result.MatchedKeywords,
		MissingKeywords: result.MissingKeywords,
		Feedback:        result.Feedback,
	}
}
