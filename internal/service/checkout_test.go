package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"

	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
)

func TestCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{38.00, 3800},
		{22.00, 2200},
		{42.50, 4250},
		{55.00, 5500},
		{0, 0},
		// 19.99 is not exactly representable; rounding must not drift down.
		{19.99, 1999},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Cents(tc.price), "price %v", tc.price)
	}
}

func newTestCheckoutService(create func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)) (*CheckoutService, *repository.MemoryCheckoutStore, *repository.MemoryCounters) {
	checkouts := repository.NewMemoryCheckoutStore()
	counters := repository.NewMemoryCounters()
	svc := &CheckoutService{
		carts:         NewCartService(testCatalog()),
		checkouts:     checkouts,
		counters:      counters,
		events:        NewEventPublisher(nil),
		baseURL:       "http://localhost:5000",
		createSession: create,
	}
	return svc, checkouts, counters
}

func TestCreateSessionEmptyCartMakesNoProcessorCall(t *testing.T) {
	called := false
	svc, _, _ := newTestCheckoutService(func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		called = true
		return nil, nil
	})

	_, err := svc.CreateSession(context.Background(), entity.Cart{})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, called)
}

func TestCreateSessionBuildsIntegerCentLineItems(t *testing.T) {
	var got *stripe.CheckoutSessionParams
	svc, checkouts, _ := newTestCheckoutService(func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		got = params
		return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
	})

	url, err := svc.CreateSession(context.Background(), entity.Cart{"1": 2, "2": 1})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_1", url)

	require.NotNil(t, got)
	require.Len(t, got.LineItems, 2)
	assert.Equal(t, int64(3800), *got.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *got.LineItems[0].Quantity)
	assert.Equal(t, "Sneakers", *got.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(2200), *got.LineItems[1].PriceData.UnitAmount)
	assert.Equal(t, int64(1), *got.LineItems[1].Quantity)
	assert.Equal(t, "http://localhost:5000/payment_success?session_id={CHECKOUT_SESSION_ID}", *got.SuccessURL)
	assert.Equal(t, "http://localhost:5000/cart", *got.CancelURL)

	// The attempt was recorded with the creation-time total, 98.00.
	sess, err := checkouts.GetByStripeSessionID(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, int64(9800), sess.AmountCents)
	assert.Equal(t, entity.CheckoutStatusCreated, sess.Status)
}

func TestCreateSessionProcessorErrorCommitsNothing(t *testing.T) {
	svc, checkouts, counters := newTestCheckoutService(func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, errors.New("stripe is down")
	})

	_, err := svc.CreateSession(context.Background(), entity.Cart{"1": 1})
	require.Error(t, err)

	_, err = checkouts.GetByStripeSessionID(context.Background(), "cs_test_1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	revenue, _ := counters.RevenueCents(context.Background())
	assert.Zero(t, revenue)
}

func TestCompleteSessionRecordsRevenueOnce(t *testing.T) {
	svc, _, counters := newTestCheckoutService(func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: "cs_test_2", URL: "https://checkout.stripe.test/cs_test_2"}, nil
	})

	cart := entity.Cart{"1": 2, "2": 1}
	_, err := svc.CreateSession(context.Background(), cart)
	require.NoError(t, err)

	total, completed, err := svc.CompleteSession(context.Background(), "cs_test_2", cart)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.InDelta(t, 98.00, total, 1e-9)

	revenue, _ := counters.RevenueCents(context.Background())
	assert.Equal(t, int64(9800), revenue)

	// Revisiting the success URL must not double-count.
	_, completed, err = svc.CompleteSession(context.Background(), "cs_test_2", cart)
	require.NoError(t, err)
	assert.False(t, completed)
	revenue, _ = counters.RevenueCents(context.Background())
	assert.Equal(t, int64(9800), revenue)
}

func TestCompleteSessionUsesCallbackTimeCart(t *testing.T) {
	svc, _, counters := newTestCheckoutService(func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: "cs_test_3", URL: "https://checkout.stripe.test/cs_test_3"}, nil
	})

	_, err := svc.CreateSession(context.Background(), entity.Cart{"1": 2, "2": 1})
	require.NoError(t, err)

	// The cart changed between session creation and the callback; the
	// recorded revenue follows the callback-time cart.
	changed := entity.Cart{"2": 1}
	total, completed, err := svc.CompleteSession(context.Background(), "cs_test_3", changed)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.InDelta(t, 22.00, total, 1e-9)

	revenue, _ := counters.RevenueCents(context.Background())
	assert.Equal(t, int64(2200), revenue)
}

func TestCompleteSessionUnknownID(t *testing.T) {
	svc, _, counters := newTestCheckoutService(nil)

	_, _, err := svc.CompleteSession(context.Background(), "cs_missing", entity.Cart{"1": 1})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	revenue, _ := counters.RevenueCents(context.Background())
	assert.Zero(t, revenue)
}
