package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

func TestCreateCheckoutSessionEmptyCartRedirectsBack(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm("/create_checkout_session", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get(echo.HeaderLocation))
}

func TestPaymentSuccessWithoutSessionIDRedirectsHome(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get("/payment_success")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get(echo.HeaderLocation))
}

func TestPaymentSuccessRecordsRevenueAndClearsCart(t *testing.T) {
	ts := newTestServer(t)
	ts.seedCart(t, entity.Cart{"1": 2, "2": 1})

	_, err := ts.checkouts.Create(context.Background(), &entity.CheckoutSession{
		StripeSessionID: "cs_test_ok",
		AmountCents:     9800,
	})
	require.NoError(t, err)

	rec := ts.get("/payment_success?session_id=cs_test_ok")
	require.Equal(t, http.StatusOK, rec.Code)

	revenue, _ := ts.counters.RevenueCents(context.Background())
	assert.Equal(t, int64(9800), revenue)
	assert.True(t, ts.currentCart(t).IsEmpty())

	// Replaying the callback neither double-counts nor errors.
	rec = ts.get("/payment_success?session_id=cs_test_ok")
	require.Equal(t, http.StatusOK, rec.Code)
	revenue, _ = ts.counters.RevenueCents(context.Background())
	assert.Equal(t, int64(9800), revenue)
}

func stripeSignature(payload, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func (ts *testServer) postWebhook(payload, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/stripe_webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookInvalidSignatureRejected(t *testing.T) {
	ts := newTestServer(t)
	payload := `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`

	rec := ts.postWebhook(payload, "t=123,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.postWebhook(payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing changed locally.
	revenue, _ := ts.counters.RevenueCents(context.Background())
	assert.Zero(t, revenue)
	messages, _ := ts.messages.ListAll(context.Background())
	assert.Empty(t, messages)
}

func TestWebhookCompletedEventAccepted(t *testing.T) {
	ts := newTestServer(t)
	payload := `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`

	rec := ts.postWebhook(payload, stripeSignature(payload, "whsec_test_secret", time.Now()))

	assert.Equal(t, http.StatusOK, rec.Code)
	// The webhook is an audit trail only; bookkeeping happens on the
	// success redirect.
	revenue, _ := ts.counters.RevenueCents(context.Background())
	assert.Zero(t, revenue)
}

func TestWebhookAcceptsForeignAPIVersion(t *testing.T) {
	ts := newTestServer(t)
	// Accounts deliver events on their own pinned API version; a mismatch
	// with the SDK's pin must not turn a validly signed event into a 400,
	// or the processor retries it forever.
	payload := `{"id":"evt_4","object":"event","api_version":"2020-08-27","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`

	rec := ts.postWebhook(payload, stripeSignature(payload, "whsec_test_secret", time.Now()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookUnrecognizedEventAccepted(t *testing.T) {
	ts := newTestServer(t)
	payload := `{"id":"evt_2","object":"event","type":"customer.created","data":{"object":{"id":"cus_1"}}}`

	rec := ts.postWebhook(payload, stripeSignature(payload, "whsec_test_secret", time.Now()))

	// Accepted so the processor stops retrying.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookStaleTimestampRejected(t *testing.T) {
	ts := newTestServer(t)
	payload := `{"id":"evt_3","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`

	rec := ts.postWebhook(payload, stripeSignature(payload, "whsec_test_secret", time.Now().Add(-time.Hour)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
