package database

import (
	"database/sql"
	"fmt"
	"time"

	"xray-education-service/education"
)

// QuizRecord is one graded quiz attempt for a learner session
type QuizRecord struct {
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage float64   `json:"percentage"`
	TakenAt    time.Time `json:"taken_at"`
}

// ActivityRecord captures the metadata of one analysis request.
// It deliberately carries no image bytes and no generated text.
type ActivityRecord struct {
	SessionID           string
	CaseID              string
	Category            string
	Region              string
	Source              string
	Model               string
	UsedDefaultTemplate bool
	DurationMs          int64
	Result              string
}

// ProgressSummary is everything the progress endpoint returns for a session
type ProgressSummary struct {
	SessionID     string          `json:"session_id"`
	Checklist     map[string]bool `json:"checklist"`
	QuizHistory   []QuizRecord    `json:"quiz_history"`
	AnalysisCount int             `json:"analysis_count"`
}

// CreateSession inserts a new learner session
func (d *Database) CreateSession(id, displayName string) error {
	query := `INSERT INTO learner_sessions (id, display_name) VALUES (?, ?)`

	_, err := d.db.Exec(query, id, displayName)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// SessionExists reports whether a learner session has been created
func (d *Database) SessionExists(id string) (bool, error) {
	query := `SELECT COUNT(*) FROM learner_sessions WHERE id = ?`

	var count int
	err := d.db.QueryRow(query, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check if session exists: %w", err)
	}

	return count > 0, nil
}

// TouchSession updates the last_seen_at timestamp for a session
func (d *Database) TouchSession(id string) error {
	query := `UPDATE learner_sessions SET last_seen_at = NOW() WHERE id = ?`

	_, err := d.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// UpsertModuleProgress marks a review checklist module complete or incomplete
func (d *Database) UpsertModuleProgress(sessionID, module string, completed bool) error {
	query := `
	INSERT INTO module_progress (session_id, module, completed)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE completed = ?`

	_, err := d.db.Exec(query, sessionID, module, completed, completed)
	if err != nil {
		return fmt.Errorf("failed to upsert module progress: %w", err)
	}

	return nil
}

// GetModuleProgress returns the review checklist for a session. Modules the
// learner has never touched are present with completed=false.
func (d *Database) GetModuleProgress(sessionID string) (map[string]bool, error) {
	checklist := education.NewChecklist()

	query := `SELECT module, completed FROM module_progress WHERE session_id = ?`

	rows, err := d.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query module progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var module string
		var completed bool
		if err := rows.Scan(&module, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan module progress: %w", err)
		}
		if _, ok := checklist[module]; ok {
			checklist[module] = completed
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over module progress rows: %w", err)
	}

	return checklist, nil
}

// SaveQuizResult records one graded quiz attempt
func (d *Database) SaveQuizResult(sessionID string, score, total int, percentage float64) error {
	query := `INSERT INTO quiz_results (session_id, score, total, percentage) VALUES (?, ?, ?, ?)`

	_, err := d.db.Exec(query, sessionID, score, total, percentage)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}

	return nil
}

// QuizHistory returns the most recent quiz attempts for a session
func (d *Database) QuizHistory(sessionID string, limit int) ([]QuizRecord, error) {
	query := `
	SELECT score, total, percentage, taken_at
	FROM quiz_results
	WHERE session_id = ?
	ORDER BY taken_at DESC, id DESC
	LIMIT ?`

	rows, err := d.db.Query(query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz history: %w", err)
	}
	defer rows.Close()

	var records []QuizRecord
	for rows.Next() {
		var r QuizRecord
		if err := rows.Scan(&r.Score, &r.Total, &r.Percentage, &r.TakenAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over quiz result rows: %w", err)
	}

	return records, nil
}

// RecordAnalysis saves the metadata of one analysis request
func (d *Database) RecordAnalysis(rec *ActivityRecord) error {
	query := `
	INSERT INTO analysis_activity (
		session_id, case_id, category, region, source, model,
		used_default_template, duration_ms, result
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.Exec(query,
		rec.SessionID,
		rec.CaseID,
		rec.Category,
		rec.Region,
		rec.Source,
		rec.Model,
		rec.UsedDefaultTemplate,
		rec.DurationMs,
		rec.Result,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis activity: %w", err)
	}

	return nil
}

// AnalysisCount returns how many analyses a session has run
func (d *Database) AnalysisCount(sessionID string) (int, error) {
	query := `SELECT COUNT(*) FROM analysis_activity WHERE session_id = ?`

	var count sql.NullInt64
	err := d.db.QueryRow(query, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analysis activity: %w", err)
	}

	if count.Valid {
		return int(count.Int64), nil
	}
	return 0, nil
}

// GetProgress assembles the full progress summary for a session
func (d *Database) GetProgress(sessionID string) (*ProgressSummary, error) {
	checklist, err := d.GetModuleProgress(sessionID)
	if err != nil {
		return nil, err
	}

	history, err := d.QuizHistory(sessionID, 10)
	if err != nil {
		return nil, err
	}

	count, err := d.AnalysisCount(sessionID)
	if err != nil {
		return nil, err
	}

	return &ProgressSummary{
		SessionID:     sessionID,
		Checklist:     checklist,
		QuizHistory:   history,
		AnalysisCount: count,
	}, nil
}
