package db

import (
	"time"

	"github.com/google/uuid"
)

// ScoreModeJD and ScoreModeGeneric identify which scoring path produced a
// stored result.
const (
	ScoreModeJD      = "jd"
	ScoreModeGeneric = "generic"
)

// ScoreRecord is a persisted scoring result for a saved resume.
type ScoreRecord struct {
	ID              uuid.UUID `json:"id"`
	ResumeID        uuid.UUID `json:"resume_id"`
	Mode            string    `json:"mode"`
	Score           int       `json:"score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	Feedback        string    `json:"feedback"`
	CreatedAt       time.Time `json:"created_at"`
}
