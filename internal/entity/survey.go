package entity

import "time"

// SurveyResponse is one row of the append-only survey log.
type SurveyResponse struct {
	ID        int       `json:"id"`
	Style     string    `json:"style"`
	Size      string    `json:"size"`
	Brands    string    `json:"brands"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
