package migrations

import (
	"database/sql"
	"time"
)

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	if err == nil {
		return nil
	}
	for i := 0; i < retries; i++ {
		time.Sleep(1 * time.Second)
		if _, err = db.Exec(query); err == nil {
			return nil
		}
	}
	return err
}

// AutoMigrateContactMessages creates the contact_messages table if it does not exist.
func AutoMigrateContactMessages(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(120) NOT NULL,
			company VARCHAR(100),
			category VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateSurveyResponses creates the survey_responses table if it does not exist.
func AutoMigrateSurveyResponses(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS survey_responses (
			id INT AUTO_INCREMENT PRIMARY KEY,
			style VARCHAR(100),
			size VARCHAR(50),
			brands VARCHAR(255),
			name VARCHAR(100),
			email VARCHAR(120),
			timestamp DATETIME NOT NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateCheckoutSessions creates the checkout_sessions table if it does not exist.
func AutoMigrateCheckoutSessions(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS checkout_sessions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			stripe_session_id VARCHAR(255) NOT NULL UNIQUE,
			amount_cents BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at DATETIME NOT NULL,
			completed_at DATETIME
		);
	`
	return execWithRetry(db, query, retries)
}
