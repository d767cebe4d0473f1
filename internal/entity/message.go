package entity

import "time"

// ContactMessage is a message submitted through the partners contact form.
// Content fields are never updated after creation; only IsRead changes.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

/*
Mysql Table

CREATE TABLE contact_messages (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(120) NOT NULL,
	company VARCHAR(100),
	category VARCHAR(50) NOT NULL,
	message TEXT NOT NULL,
	timestamp DATETIME NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE
);
*/
