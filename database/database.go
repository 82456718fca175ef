package database

import (
	"database/sql"
	"fmt"
	"time"

	"xray-education-service/config"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// Database represents the database connection
type Database struct {
	db *sql.DB
}

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection with exponential backoff retry. The store is an
	// optional feature, so give up after a few attempts instead of blocking
	// startup forever.
	var waitInterval time.Duration = 1 * time.Second
	var pingErr error
	for attempt := 0; attempt < 5; attempt++ {
		if pingErr = db.Ping(); pingErr == nil {
			break // Connection successful
		}
		log.Warnf("Database connection failed, retrying in %v: %v", waitInterval, pingErr)
		time.Sleep(waitInterval)
		waitInterval *= 2 // Exponential backoff: 1s, 2s, 4s, 8s, ...
	}
	if pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", pingErr)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// CreateTables creates the learner progress tables if they don't exist.
// Only session and activity metadata is stored here; image bytes, clinical
// context and generated analysis text never touch the database.
func (d *Database) CreateTables() error {
	sessionsQuery := `
	CREATE TABLE IF NOT EXISTS learner_sessions (
		id VARCHAR(36) NOT NULL,
		display_name VARCHAR(255) DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_seen_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	)`

	if _, err := d.db.Exec(sessionsQuery); err != nil {
		return fmt.Errorf("failed to create learner_sessions table: %w", err)
	}
	log.Info("learner_sessions table created/verified")

	progressQuery := `
	CREATE TABLE IF NOT EXISTS module_progress (
		session_id VARCHAR(36) NOT NULL,
		module VARCHAR(64) NOT NULL,
		completed BOOLEAN DEFAULT FALSE,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (session_id, module)
	)`

	if _, err := d.db.Exec(progressQuery); err != nil {
		return fmt.Errorf("failed to create module_progress table: %w", err)
	}
	log.Info("module_progress table created/verified")

	quizQuery := `
	CREATE TABLE IF NOT EXISTS quiz_results (
		id INT NOT NULL AUTO_INCREMENT,
		session_id VARCHAR(36) NOT NULL,
		score INT NOT NULL,
		total INT NOT NULL,
		percentage FLOAT NOT NULL,
		taken_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX idx_quiz_results_session (session_id)
	)`

	if _, err := d.db.Exec(quizQuery); err != nil {
		return fmt.Errorf("failed to create quiz_results table: %w", err)
	}
	log.Info("quiz_results table created/verified")

	activityQuery := `
	CREATE TABLE IF NOT EXISTS analysis_activity (
		id INT NOT NULL AUTO_INCREMENT,
		session_id VARCHAR(36) NOT NULL DEFAULT '',
		case_id VARCHAR(64) NOT NULL,
		category VARCHAR(32) NOT NULL,
		region VARCHAR(64) DEFAULT '',
		source VARCHAR(32) NOT NULL,
		model VARCHAR(128) NOT NULL,
		used_default_template BOOLEAN DEFAULT FALSE,
		duration_ms INT NOT NULL DEFAULT 0,
		result VARCHAR(16) NOT NULL DEFAULT 'success',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX idx_analysis_activity_session (session_id),
		INDEX idx_analysis_activity_category (category)
	)`

	if _, err := d.db.Exec(activityQuery); err != nil {
		return fmt.Errorf("failed to create analysis_activity table: %w", err)
	}
	log.Info("analysis_activity table created/verified")

	return nil
}

// columnExists checks if a column exists in a table
func (d *Database) columnExists(tableName, columnName string) (bool, error) {
	query := `
	SELECT COUNT(*)
	FROM INFORMATION_SCHEMA.COLUMNS
	WHERE TABLE_SCHEMA = DATABASE()
	AND TABLE_NAME = ?
	AND COLUMN_NAME = ?`

	var count int
	err := d.db.QueryRow(query, tableName, columnName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check if column exists: %w", err)
	}

	return count > 0, nil
}

// indexExists checks if an index exists in a table
func (d *Database) indexExists(tableName, indexName string) (bool, error) {
	query := `
	SELECT COUNT(*)
	FROM INFORMATION_SCHEMA.STATISTICS
	WHERE TABLE_SCHEMA = DATABASE()
	AND TABLE_NAME = ?
	AND INDEX_NAME = ?`

	var count int
	err := d.db.QueryRow(query, tableName, indexName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check if index exists: %w", err)
	}

	return count > 0, nil
}

// MigrateTables brings tables created by earlier builds up to the current schema
func (d *Database) MigrateTables() error {
	// Check and add display_name column
	exists, err := d.columnExists("learner_sessions", "display_name")
	if err != nil {
		return fmt.Errorf("failed to check if display_name column exists: %w", err)
	}

	if !exists {
		log.Info("Adding display_name column to learner_sessions table...")
		query := "ALTER TABLE learner_sessions ADD COLUMN display_name VARCHAR(255) DEFAULT ''"
		_, err = d.db.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to add display_name column: %w", err)
		}
		log.Info("Successfully added display_name column to learner_sessions table")
	} else {
		log.Info("display_name column already exists in learner_sessions table, skipping migration")
	}

	// Check and add result column
	exists, err = d.columnExists("analysis_activity", "result")
	if err != nil {
		return fmt.Errorf("failed to check if result column exists: %w", err)
	}

	if !exists {
		log.Info("Adding result column to analysis_activity table...")
		query := "ALTER TABLE analysis_activity ADD COLUMN result VARCHAR(16) NOT NULL DEFAULT 'success'"
		_, err = d.db.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to add result column: %w", err)
		}
		log.Info("Successfully added result column to analysis_activity table")
	} else {
		log.Info("result column already exists in analysis_activity table, skipping migration")
	}

	// Check and add source index
	indexName := "idx_analysis_activity_source"
	exists, err = d.indexExists("analysis_activity", indexName)
	if err != nil {
		return fmt.Errorf("failed to check if %s index exists: %w", indexName, err)
	}

	if !exists {
		log.Infof("Adding %s index to analysis_activity table...", indexName)
		query := fmt.Sprintf("ALTER TABLE analysis_activity ADD INDEX %s (source)", indexName)
		_, err = d.db.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to add %s index: %w", indexName, err)
		}
		log.Infof("Successfully added %s index to analysis_activity table", indexName)
	} else {
		log.Infof("%s index already exists in analysis_activity table, skipping migration", indexName)
	}

	return nil
}

// GetDB returns the underlying sql.DB for direct queries
func (d *Database) GetDB() *sql.DB {
	return d.db
}
