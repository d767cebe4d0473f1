package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"

	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrEmptyCart is returned when checkout is attempted with no cart entries.
// No processor call is made in that case.
var ErrEmptyCart = errors.New("cart is empty")

// Cents converts a catalog price to integer minor units. Prices are given to
// the cent, so rounding here is always exact; math.Round guards against
// float drift that plain truncation would let through.
func Cents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CheckoutService drives one hosted-checkout attempt: validate the cart,
// create the processor session, and on the success callback record revenue
// exactly once.
type CheckoutService struct {
	carts     *CartService
	checkouts repository.CheckoutStore
	counters  repository.Counters
	events    *EventPublisher
	baseURL   string

	// createSession is swapped out in tests; the default calls Stripe.
	createSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewCheckoutService(carts *CartService, checkouts repository.CheckoutStore, counters repository.Counters, events *EventPublisher, secretKey, baseURL string) *CheckoutService {
	stripe.Key = secretKey
	// One bounded attempt per checkout; failures surface to the visitor
	// immediately instead of retrying.
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: 15 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
	}))

	return &CheckoutService{
		carts:         carts,
		checkouts:     checkouts,
		counters:      counters,
		events:        events,
		baseURL:       baseURL,
		createSession: session.New,
	}
}

// CreateSession converts the cart into a hosted checkout session and returns
// the processor URL to redirect the visitor to. Nothing is committed locally
// until the processor call has succeeded.
func (s *CheckoutService) CreateSession(ctx context.Context, cart entity.Cart) (string, error) {
	items, total := s.carts.LineItems(cart)
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(Cents(item.Product.Price)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Product.Name),
					Description: stripe.String(item.Product.Description),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(s.baseURL + "/payment_success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(s.baseURL + "/cart"),
	}

	sess, err := s.createSession(params)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating stripe checkout session")
		return "", err
	}

	_, err = s.checkouts.Create(ctx, &entity.CheckoutSession{
		StripeSessionID: sess.ID,
		AmountCents:     Cents(total),
	})
	if err != nil {
		logger.Error().Err(err).Str("stripe_session_id", sess.ID).Msg("Error recording checkout session")
		return "", err
	}

	return sess.URL, nil
}

// CompleteSession handles the success callback. Revenue is the cart total
// computed now, at callback time, matching the storefront's original
// bookkeeping; the created -> completed transition guards against the
// callback being replayed. The returned bool reports whether this call was
// the completing one, i.e. whether the caller should clear the cart.
func (s *CheckoutService) CompleteSession(ctx context.Context, stripeSessionID string, cart entity.Cart) (float64, bool, error) {
	first, err := s.checkouts.MarkCompleted(ctx, stripeSessionID)
	if err != nil {
		return 0, false, err
	}
	if !first {
		logger.Info().Str("stripe_session_id", stripeSessionID).Msg("Checkout session already completed")
		return 0, false, nil
	}

	_, total := s.carts.LineItems(cart)
	if _, err := s.counters.AddRevenueCents(ctx, Cents(total)); err != nil {
		logger.Error().Err(err).Str("stripe_session_id", stripeSessionID).Msg("Error recording revenue")
		return 0, false, err
	}

	if err := s.events.PublishCheckoutCompleted(ctx, stripeSessionID, Cents(total)); err != nil {
		// Event delivery is best effort; the purchase itself already stands.
		logger.Error().Err(err).Str("stripe_session_id", stripeSessionID).Msg("Error publishing checkout event")
	}

	logger.Info().Str("stripe_session_id", stripeSessionID).Float64("total", total).Msg("Checkout completed")
	return total, true, nil
}
