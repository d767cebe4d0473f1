package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (h *Handler) AddToCart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	fallback := c.Request().Referer()
	if fallback == "" {
		fallback = "/shop"
	}

	product := h.catalog.FindByID(id)
	if product == nil {
		return c.Redirect(http.StatusFound, fallback)
	}

	cart := h.carts.Cart(c)
	cart.Add(id, 1)
	if err := h.carts.SaveCart(c, cart); err != nil {
		logger.Error().Err(err).Msg("Error saving cart")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart")
	}

	return h.flashAndRedirect(c, "success", fmt.Sprintf("%s added to cart!", product.Name), fallback)
}

func (h *Handler) Cart(c echo.Context) error {
	items, total := h.cartSvc.LineItems(h.carts.Cart(c))
	return h.render(c, "cart.html", map[string]interface{}{
		"Items":     items,
		"Total":     total,
		"StripeKey": h.cfg.Stripe.PublishableKey,
	})
}

func (h *Handler) RemoveFromCart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	cart := h.carts.Cart(c)
	cart.Remove(id)
	if err := h.carts.SaveCart(c, cart); err != nil {
		logger.Error().Err(err).Msg("Error saving cart")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart")
	}

	return c.Redirect(http.StatusFound, "/cart")
}

// UpdateCart applies the bulk quantity edits from the cart page. Quantities
// are validated before any entry is touched: one malformed field rejects the
// whole request and leaves the stored cart unchanged.
func (h *Handler) UpdateCart(c echo.Context) error {
	cart := h.carts.Cart(c)

	quantities := make(map[string]int, len(cart))
	for id := range cart {
		raw := c.FormValue("quantity_" + id)
		if raw == "" {
			quantities[id] = 0
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid quantity")
		}
		quantities[id] = qty
	}

	for id, qty := range quantities {
		cart.SetQuantity(id, qty)
	}
	if err := h.carts.SaveCart(c, cart); err != nil {
		logger.Error().Err(err).Msg("Error saving cart")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update cart")
	}

	return c.Redirect(http.StatusFound, "/cart")
}
