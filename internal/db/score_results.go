package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-scorer/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SaveScoreResult persists a scoring result for a resume and returns the
// stored record. Mode must be ScoreModeJD or ScoreModeGeneric.
func (db *DB) SaveScoreResult(ctx context.Context, resumeID uuid.UUID, mode string, result *types.ScoreResult) (*ScoreRecord, error) {
	if mode != ScoreModeJD && mode != ScoreModeGeneric {
		return nil, fmt.Errorf("invalid score mode %q", mode)
	}

	matched, err := marshalKeywords(result.MatchedKeywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal matched keywords: %w", err)
	}
	missing, err := marshalKeywords(result.MissingKeywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal missing keywords: %w", err)
	}

	record := &ScoreRecord{
		ID:              uuid.New(),
		ResumeID:        resumeID,
		Mode:            mode,
		Score:           result.Score,
		MatchedKeywords: result.MatchedKeywords,
		MissingKeywords: result.MissingKeywords,
		Feedback:        result.Feedback,
	}

	err = db.pool.QueryRow(ctx, `
		INSERT INTO score_results (id, resume_id, mode, score, matched_keywords, missing_keywords, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, record.ID, record.ResumeID, record.Mode, record.Score, matched, missing, record.Feedback).Scan(&record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert score result: %w", err)
	}

	return record, nil
}

// GetScoreResult fetches a single stored score by id.
func (db *DB) GetScoreResult(ctx context.Context, id uuid.UUID) (*ScoreRecord, error) {
	row := db.pool.QueryRow(ctx, `
		SELECT id, resume_id, mode, score, matched_keywords, missing_keywords, feedback, created_at
		FROM score_results
		WHERE id = $1
	`, id)

	record, err := scanScoreRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get score result: %w", err)
	}
	return record, nil
}

// ListScoreResults returns all stored scores for a resume, newest first.
func (db *DB) ListScoreResults(ctx context.Context, resumeID uuid.UUID) ([]*ScoreRecord, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, resume_id, mode, score, matched_keywords, missing_keywords, feedback, created_at
		FROM score_results
		WHERE resume_id = $1
		ORDER BY created_at DESC
	`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list score results: %w", err)
	}
	defer rows.Close()

	records := []*ScoreRecord{}
	for rows.Next() {
		record, err := scanScoreRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score result: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate score results: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScoreRecord(row rowScanner) (*ScoreRecord, error) {
	var record ScoreRecord
	var matched, missing []byte

	err := row.Scan(
		&record.ID,
		&record.ResumeID,
		&record.Mode,
		&record.Score,
		&matched,
		&missing,
		&record.Feedback,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if record.MatchedKeywords, err = unmarshalKeywords(matched); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matched keywords: %w", err)
	}
	if record.MissingKeywords, err = unmarshalKeywords(missing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal missing keywords: %w", err)
	}

	return &record, nil
}

// marshalKeywords encodes a keyword list for a jsonb column. A nil slice is
// stored as an empty array so readers never see null.
func marshalKeywords(keywords []string) ([]byte, error) {
	if keywords == nil {
		keywords = []string{}
	}
	return json.Marshal(keywords)
}

func unmarshalKeywords(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var keywords []string
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, err
	}
	if keywords == nil {
		keywords = []string{}
	}
	return keywords, nil
}
