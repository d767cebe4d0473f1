package api

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ShopThryfted/Thryfted/internal/config"
	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
	"github.com/ShopThryfted/Thryfted/internal/service"
	"github.com/ShopThryfted/Thryfted/internal/session"
	"github.com/ShopThryfted/Thryfted/metrics"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Handler holds every dependency the HTTP surface needs.
type Handler struct {
	cfg       *config.Config
	catalog   *entity.Catalog
	sessions  *session.Manager
	carts     session.CartStore
	cartSvc   *service.CartService
	checkouts *service.CheckoutService
	messages  *service.MessageService
	surveys   *service.SurveyService
	counters  repository.Counters
}

func NewHandler(
	cfg *config.Config,
	catalog *entity.Catalog,
	sessions *session.Manager,
	carts session.CartStore,
	cartSvc *service.CartService,
	checkouts *service.CheckoutService,
	messages *service.MessageService,
	surveys *service.SurveyService,
	counters repository.Counters,
) *Handler {
	return &Handler{
		cfg:       cfg,
		catalog:   catalog,
		sessions:  sessions,
		carts:     carts,
		cartSvc:   cartSvc,
		checkouts: checkouts,
		messages:  messages,
		surveys:   surveys,
		counters:  counters,
	}
}

// RegisterRoutes wires the full storefront and admin surface onto e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(h.metricsMiddleware)

	e.GET("/", h.Root)
	e.GET("/survey", h.SurveyForm)
	e.POST("/survey", h.SubmitSurvey)
	e.GET("/retake_survey", h.RetakeSurvey)
	e.POST("/share_count", h.ShareCount)

	e.GET("/home", h.Home)
	e.GET("/shop", h.Shop)
	e.GET("/product/:id", h.ProductDetail)
	e.GET("/about", h.About)
	e.GET("/partners", h.Partners)
	e.POST("/partners", h.SubmitPartners)

	e.GET("/add_to_cart/:id", h.AddToCart)
	e.GET("/cart", h.Cart)
	e.GET("/remove_from_cart/:id", h.RemoveFromCart)
	e.POST("/update_cart", h.UpdateCart)

	e.POST("/create_checkout_session", h.CreateCheckoutSession)
	e.GET("/payment_success", h.PaymentSuccess)
	e.POST("/stripe_webhook", h.StripeWebhook)

	admin := e.Group("/admin")
	admin.GET("/login", h.AdminLoginForm)
	admin.POST("/login", h.AdminLogin)
	admin.GET("/logout", h.AdminLogout)
	admin.GET("/messages", h.AdminMessages, h.requireAdmin)
	admin.GET("/mark_read/:id", h.AdminMarkRead, h.requireAdmin)
	admin.GET("/delete_message/:id", h.AdminDeleteMessage, h.requireAdmin)
	admin.GET("/reply/:id", h.AdminReplyForm, h.requireAdmin)
	admin.POST("/reply/:id", h.AdminReply, h.requireAdmin)

	e.GET("/metrics", echo.WrapHandler(metrics.MetricsHandler()))
}

// requireAdmin redirects to the login page unless the session carries the
// admin flag.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.sessions.IsAdmin(c) {
			return c.Redirect(http.StatusFound, "/admin/login")
		}
		return next(c)
	}
}

func (h *Handler) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else {
				status = http.StatusInternalServerError
			}
		}
		metrics.RecordRequest(c.Request().Method, c.Path(), status, time.Since(start))
		return err
	}
}

// flashAndRedirect stores a one-shot notice and sends the visitor on.
func (h *Handler) flashAndRedirect(c echo.Context, kind, message, location string) error {
	if err := h.sessions.AddFlash(c, kind, message); err != nil {
		logger.Error().Err(err).Msg("Error saving flash")
	}
	return c.Redirect(http.StatusFound, location)
}
