package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShopThryfted/Thryfted/internal/config"
	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
	"github.com/ShopThryfted/Thryfted/internal/service"
	"github.com/ShopThryfted/Thryfted/internal/session"
)

const testAdminPassword = "letmein"

type testServer struct {
	e         *echo.Echo
	handler   *Handler
	carts     *session.MemoryCartStore
	counters  *repository.MemoryCounters
	messages  *repository.MemoryMessageStore
	checkouts *repository.MemoryCheckoutStore
	surveys   *repository.MemorySurveyStore
	notifier  *stubNotifier
}

type stubNotifier struct {
	sent int
	err  error
}

func (n *stubNotifier) Send(recipient, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent++
	return nil
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		BaseURL:           "http://localhost:5000",
		SessionSecret:     "test-secret",
		AdminPasswordHash: string(hash),
		Stripe: config.StripeConfig{
			PublishableKey: "pk_test_123",
			SecretKey:      "sk_test_123",
			WebhookSecret:  "whsec_test_secret",
		},
	}

	catalog := entity.DefaultCatalog()
	sessions := session.NewManager(cfg.SessionSecret)
	carts := session.NewMemoryCartStore()
	counters := repository.NewMemoryCounters()
	messages := repository.NewMemoryMessageStore()
	checkouts := repository.NewMemoryCheckoutStore()
	surveys := repository.NewMemorySurveyStore()
	notifier := &stubNotifier{}

	cartSvc := service.NewCartService(catalog)
	checkoutSvc := service.NewCheckoutService(cartSvc, checkouts, counters, service.NewEventPublisher(nil), cfg.Stripe.SecretKey, cfg.BaseURL)
	messageSvc := service.NewMessageService(messages, notifier)
	surveySvc := service.NewSurveyService(surveys)

	handler := NewHandler(cfg, catalog, sessions, carts, cartSvc, checkoutSvc, messageSvc, surveySvc, counters)

	e := echo.New()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer
	handler.RegisterRoutes(e)

	return &testServer{
		e:         e,
		handler:   handler,
		carts:     carts,
		counters:  counters,
		messages:  messages,
		checkouts: checkouts,
		surveys:   surveys,
		notifier:  notifier,
	}
}

func (ts *testServer) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

// seedCart stores a cart for the default httptest visitor.
func (ts *testServer) seedCart(t *testing.T, cart entity.Cart) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := ts.e.NewContext(req, httptest.NewRecorder())
	require.NoError(t, ts.carts.SaveCart(c, cart))
}

func (ts *testServer) currentCart(t *testing.T) entity.Cart {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := ts.e.NewContext(req, httptest.NewRecorder())
	return ts.carts.Cart(c)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func msgFixture(name string) *entity.ContactMessage {
	return &entity.ContactMessage{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Category: "wholesale",
		Message:  "Hello there",
	}
}

// login authenticates as admin and returns the session cookies.
func (ts *testServer) login(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := ts.postForm("/admin/login", url.Values{"password": {testAdminPassword}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/messages", rec.Header().Get(echo.HeaderLocation))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}
