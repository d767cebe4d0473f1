package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// SurveyStore is the append-only survey response log.
type SurveyStore interface {
	Append(ctx context.Context, resp *entity.SurveyResponse) error
}

type SurveyRepository struct {
	db *sql.DB
}

func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	return &SurveyRepository{db}
}

func (r *SurveyRepository) Append(ctx context.Context, resp *entity.SurveyResponse) error {
	resp.Timestamp = time.Now().UTC()

	query := `INSERT INTO survey_responses (style, size, brands, name, email, timestamp) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, resp.Style, resp.Size, resp.Brands, resp.Name, resp.Email, resp.Timestamp)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	resp.ID = int(id)
	return nil
}
