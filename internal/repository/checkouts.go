package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// CheckoutStore persists checkout attempts keyed by the processor session id.
type CheckoutStore interface {
	Create(ctx context.Context, sess *entity.CheckoutSession) (*entity.CheckoutSession, error)
	GetByStripeSessionID(ctx context.Context, stripeSessionID string) (*entity.CheckoutSession, error)
	// MarkCompleted transitions created -> completed. It returns true on the
	// first transition and false when the session was already completed, so
	// the success callback stays idempotent under repeated visits.
	MarkCompleted(ctx context.Context, stripeSessionID string) (bool, error)
}

type CheckoutRepository struct {
	db *sql.DB
}

func NewCheckoutRepository(db *sql.DB) *CheckoutRepository {
	return &CheckoutRepository{db}
}

func (r *CheckoutRepository) Create(ctx context.Context, sess *entity.CheckoutSession) (*entity.CheckoutSession, error) {
	sess.Status = entity.CheckoutStatusCreated
	sess.CreatedAt = time.Now().UTC()

	query := `INSERT INTO checkout_sessions (stripe_session_id, amount_cents, status, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, sess.StripeSessionID, sess.AmountCents, sess.Status, sess.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	sess.ID = int(id)
	return sess, nil
}

func (r *CheckoutRepository) GetByStripeSessionID(ctx context.Context, stripeSessionID string) (*entity.CheckoutSession, error) {
	query := `SELECT id, stripe_session_id, amount_cents, status, created_at, completed_at FROM checkout_sessions WHERE stripe_session_id = ?`

	sess := &entity.CheckoutSession{}
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, stripeSessionID).Scan(&sess.ID, &sess.StripeSessionID, &sess.AmountCents, &sess.Status, &sess.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		sess.CompletedAt = &completedAt.Time
	}

	return sess, nil
}

func (r *CheckoutRepository) MarkCompleted(ctx context.Context, stripeSessionID string) (bool, error) {
	query := `UPDATE checkout_sessions SET status = ?, completed_at = ? WHERE stripe_session_id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query, entity.CheckoutStatusCompleted, time.Now().UTC(), stripeSessionID, entity.CheckoutStatusCreated)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	// Either the session does not exist or it was already completed.
	if _, err := r.GetByStripeSessionID(ctx, stripeSessionID); err != nil {
		return false, err
	}
	return false, nil
}
