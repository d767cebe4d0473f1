package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/service"
	"github.com/ShopThryfted/Thryfted/metrics"
)

func (h *Handler) CreateCheckoutSession(c echo.Context) error {
	url, err := h.checkouts.CreateSession(c.Request().Context(), h.carts.Cart(c))
	if errors.Is(err, service.ErrEmptyCart) {
		return h.flashAndRedirect(c, "error", "Your cart is empty!", "/cart")
	}
	if err != nil {
		return h.flashAndRedirect(c, "error", "Error creating checkout session. Please try again.", "/cart")
	}

	metrics.RecordCheckoutCreated()
	// 303 keeps browsers from replaying the form POST against the hosted page.
	return c.Redirect(http.StatusSeeOther, url)
}

func (h *Handler) PaymentSuccess(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.Redirect(http.StatusFound, "/home")
	}

	total, completed, err := h.checkouts.CompleteSession(c.Request().Context(), sessionID, h.carts.Cart(c))
	if err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("Error completing checkout")
		return h.flashAndRedirect(c, "error", "We could not confirm your payment.", "/cart")
	}

	if completed {
		metrics.RecordCheckoutCompleted()
		if err := h.carts.SaveCart(c, entity.Cart{}); err != nil {
			logger.Error().Err(err).Msg("Error clearing cart")
		}
	}

	return h.render(c, "payment_success.html", map[string]interface{}{
		"Total": total,
	})
}

// StripeWebhook receives signed processor events. Deliveries are
// at-least-once and may arrive concurrently; nothing here mutates state, so
// replays are harmless.
func (h *Handler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		metrics.RecordWebhookEvent("rejected")
		return c.String(http.StatusBadRequest, "Invalid payload")
	}

	// Accounts pin their own API version; only the signature decides whether
	// a delivery is trusted.
	event, err := webhook.ConstructEventWithOptions(payload, c.Request().Header.Get("Stripe-Signature"), h.cfg.Stripe.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		metrics.RecordWebhookEvent("rejected")
		return c.String(http.StatusBadRequest, "Invalid signature")
	}

	switch event.Type {
	case "checkout.session.completed":
		// Bookkeeping happens on the success redirect; the webhook is an
		// audit trail only.
		logger.Info().Str("event_id", event.ID).Msg("Payment successful")
		metrics.RecordWebhookEvent("accepted")
	default:
		// Accept unrecognized events so the processor stops retrying them.
		metrics.RecordWebhookEvent("ignored")
	}

	return c.String(http.StatusOK, "Success")
}
