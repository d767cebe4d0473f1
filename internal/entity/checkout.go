package entity

import "time"

const (
	CheckoutStatusCreated   = "created"
	CheckoutStatusCompleted = "completed"
)

// CheckoutSession records one hosted-checkout attempt, keyed by the payment
// processor's session id. Status moves created -> completed exactly once; the
// completed transition is what makes the success callback idempotent.
type CheckoutSession struct {
	ID              int        `json:"id"`
	StripeSessionID string     `json:"stripe_session_id"`
	AmountCents     int64      `json:"amount_cents"` // cart total when the session was created
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}
