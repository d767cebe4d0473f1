package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// Root routes first-time visitors through the survey gate.
func (h *Handler) Root(c echo.Context) error {
	if h.sessions.SurveyCompleted(c) {
		return c.Redirect(http.StatusFound, "/home")
	}
	return c.Redirect(http.StatusFound, "/survey")
}

func (h *Handler) SurveyForm(c echo.Context) error {
	return h.render(c, "survey.html", nil)
}

func (h *Handler) SubmitSurvey(c echo.Context) error {
	err := h.surveys.Record(
		c.Request().Context(),
		c.FormValue("style"),
		c.FormValue("size"),
		c.FormValue("brands"),
		c.FormValue("name"),
		c.FormValue("email"),
	)
	if err != nil {
		return h.flashAndRedirect(c, "error", "Sorry, something went wrong. Please try again.", "/survey")
	}

	if err := h.sessions.SetSurveyCompleted(c, true); err != nil {
		logger.Error().Err(err).Msg("Error saving survey flag")
	}
	return h.flashAndRedirect(c, "success", "Thanks for completing the survey!", "/home")
}

func (h *Handler) RetakeSurvey(c echo.Context) error {
	if err := h.sessions.SetSurveyCompleted(c, false); err != nil {
		logger.Error().Err(err).Msg("Error clearing survey flag")
	}
	return h.flashAndRedirect(c, "info", "You can now retake the survey.", "/survey")
}

// ShareCount bumps the share counter and returns no content.
func (h *Handler) ShareCount(c echo.Context) error {
	count, err := h.counters.IncrementShareCount(c.Request().Context())
	if err != nil {
		logger.Error().Err(err).Msg("Error incrementing share count")
		return c.NoContent(http.StatusInternalServerError)
	}
	logger.Info().Int64("count", count).Msg("Shared")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Home(c echo.Context) error {
	views, err := h.counters.IncrementSiteViews(c.Request().Context())
	if err != nil {
		logger.Error().Err(err).Msg("Error incrementing site views")
	} else {
		logger.Info().Int64("views", views).Msg("Site viewed")
	}

	return h.render(c, "home.html", map[string]interface{}{
		"Products": h.catalog.Featured(3),
	})
}

func (h *Handler) Shop(c echo.Context) error {
	return h.render(c, "shop.html", map[string]interface{}{
		"Products": h.catalog.All(),
	})
}

func (h *Handler) ProductDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	product := h.catalog.FindByID(id)
	if product == nil {
		return h.flashAndRedirect(c, "error", "Product not found", "/shop")
	}

	return h.render(c, "product_detail.html", map[string]interface{}{
		"Product": product,
	})
}

func (h *Handler) About(c echo.Context) error {
	return h.render(c, "about.html", map[string]interface{}{
		"Founders": entity.Founders(),
	})
}
