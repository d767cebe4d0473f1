package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// ErrNotFound is returned when a row the caller named does not exist.
var ErrNotFound = errors.New("not found")

// MessageStore is the contact-message CRUD surface consumed by the service
// layer. Backed by MySQL in production and by MemoryMessageStore in tests.
type MessageStore interface {
	Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error)
	GetByID(ctx context.Context, id int) (*entity.ContactMessage, error)
	ListAll(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error) {
	msg.Timestamp = time.Now().UTC()

	query := `INSERT INTO contact_messages (name, email, company, category, message, timestamp, is_read) VALUES (?, ?, ?, ?, ?, ?, FALSE)`
	res, err := r.db.ExecContext(ctx, query, msg.Name, msg.Email, msg.Company, msg.Category, msg.Message, msg.Timestamp)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	msg.ID = int(id)
	return msg, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int) (*entity.ContactMessage, error) {
	query := `SELECT id, name, email, company, category, message, timestamp, is_read FROM contact_messages WHERE id = ?`

	msg := &entity.ContactMessage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Company, &msg.Category, &msg.Message, &msg.Timestamp, &msg.IsRead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// ListAll returns every message, newest first.
func (r *MessageRepository) ListAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	query := `SELECT id, name, email, company, category, message, timestamp, is_read FROM contact_messages ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		msg := &entity.ContactMessage{}
		err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Company, &msg.Category, &msg.Message, &msg.Timestamp, &msg.IsRead)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int) error {
	query := `UPDATE contact_messages SET is_read = TRUE WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish "already read" from "no such row".
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM contact_messages WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM contact_messages WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
