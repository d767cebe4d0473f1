package api

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Partners(c echo.Context) error {
	return h.render(c, "partners.html", map[string]interface{}{
		"Company": h.cfg.Company,
	})
}

func (h *Handler) SubmitPartners(c echo.Context) error {
	_, err := h.messages.Create(
		c.Request().Context(),
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("company"),
		c.FormValue("category"),
		c.FormValue("message"),
	)
	if err != nil {
		return h.flashAndRedirect(c, "error", "Sorry, there was an error sending your message. Please try again.", "/partners")
	}

	return h.flashAndRedirect(c, "success", "Thank you for your message! We'll get back to you soon.", "/partners")
}
