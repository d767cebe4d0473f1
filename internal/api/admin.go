package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShopThryfted/Thryfted/internal/repository"
	"github.com/ShopThryfted/Thryfted/internal/service"
)

func (h *Handler) AdminLoginForm(c echo.Context) error {
	return h.render(c, "admin_login.html", nil)
}

// AdminLogin checks the submitted password against the bcrypt hash from the
// environment. An unset hash can never match, so a missing secret denies all
// logins rather than allowing empty-password access.
func (h *Handler) AdminLogin(c echo.Context) error {
	password := c.FormValue("password")

	err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password))
	if err != nil {
		return h.flashAndRedirect(c, "error", "Incorrect password", "/admin/login")
	}

	if err := h.sessions.SetAdmin(c, true); err != nil {
		logger.Error().Err(err).Msg("Error saving admin session")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	return c.Redirect(http.StatusFound, "/admin/messages")
}

func (h *Handler) AdminLogout(c echo.Context) error {
	if err := h.sessions.SetAdmin(c, false); err != nil {
		logger.Error().Err(err).Msg("Error clearing admin session")
	}
	return h.flashAndRedirect(c, "success", "Logged out successfully.", "/admin/login")
}

func (h *Handler) AdminMessages(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.messages.ListAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load messages")
	}

	siteViews, _ := h.counters.SiteViews(ctx)
	shareCount, _ := h.counters.ShareCount(ctx)
	revenueCents, _ := h.counters.RevenueCents(ctx)

	return h.render(c, "admin_messages.html", map[string]interface{}{
		"Messages":     messages,
		"SiteViews":    siteViews,
		"ShareCount":   shareCount,
		"RevenueCents": revenueCents,
	})
}

func (h *Handler) AdminMarkRead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message id")
	}

	if err := h.messages.MarkRead(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return h.flashAndRedirect(c, "error", "Message not found.", "/admin/messages")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update message")
	}

	return c.Redirect(http.StatusFound, "/admin/messages")
}

func (h *Handler) AdminDeleteMessage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message id")
	}

	if err := h.messages.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return h.flashAndRedirect(c, "error", "Message not found.", "/admin/messages")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete message")
	}

	return h.flashAndRedirect(c, "success", "Message deleted successfully.", "/admin/messages")
}

func (h *Handler) AdminReplyForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message id")
	}

	msg, err := h.messages.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return h.flashAndRedirect(c, "error", "Message not found.", "/admin/messages")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load message")
	}

	return h.render(c, "admin_reply.html", map[string]interface{}{
		"Message":        msg,
		"DefaultSubject": service.DefaultReplySubject(msg),
		"DefaultBody":    service.DefaultReplyBody(msg),
	})
}

func (h *Handler) AdminReply(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message id")
	}

	err = h.messages.Reply(c.Request().Context(), id, c.FormValue("subject"), c.FormValue("body"))
	switch {
	case errors.Is(err, service.ErrValidation):
		return h.flashAndRedirect(c, "error", "Subject and message body are required.", "/admin/reply/"+c.Param("id"))
	case errors.Is(err, repository.ErrNotFound):
		return h.flashAndRedirect(c, "error", "Message not found.", "/admin/messages")
	case err != nil:
		return h.flashAndRedirect(c, "error", "Failed to send email: "+err.Error(), "/admin/reply/"+c.Param("id"))
	}

	return h.flashAndRedirect(c, "success", "Reply sent successfully!", "/admin/messages")
}
