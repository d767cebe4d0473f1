package session

import (
	"encoding/gob"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

const (
	sessionName = "thryfted_session"

	cartKey            = "cart"
	adminKey           = "admin_logged_in"
	surveyCompletedKey = "survey_completed"
)

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Kind    string // "success", "error", "info"
	Message string
}

func init() {
	gob.Register(map[string]int{})
	gob.Register(Flash{})
}

// CartStore loads and saves a visitor's cart. The production implementation
// is the signed-cookie session Manager; tests use MemoryCartStore.
type CartStore interface {
	Cart(c echo.Context) entity.Cart
	SaveCart(c echo.Context, cart entity.Cart) error
}

// Manager wraps a signed-cookie session store holding the visitor's cart,
// the survey-completed flag, the admin flag, and flash messages.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	return &Manager{store: store}
}

func (m *Manager) session(c echo.Context) *sessions.Session {
	// Get never fails fatally for cookie stores: a bad or expired cookie
	// yields a fresh session.
	s, _ := m.store.Get(c.Request(), sessionName)
	return s
}

func (m *Manager) save(c echo.Context, s *sessions.Session) error {
	return s.Save(c.Request(), c.Response())
}

func (m *Manager) Cart(c echo.Context) entity.Cart {
	s := m.session(c)
	if cart, ok := s.Values[cartKey].(map[string]int); ok {
		return entity.Cart(cart)
	}
	return entity.Cart{}
}

func (m *Manager) SaveCart(c echo.Context, cart entity.Cart) error {
	s := m.session(c)
	s.Values[cartKey] = map[string]int(cart)
	return m.save(c, s)
}

func (m *Manager) IsAdmin(c echo.Context) bool {
	s := m.session(c)
	flag, _ := s.Values[adminKey].(bool)
	return flag
}

func (m *Manager) SetAdmin(c echo.Context, admin bool) error {
	s := m.session(c)
	if admin {
		s.Values[adminKey] = true
	} else {
		delete(s.Values, adminKey)
	}
	return m.save(c, s)
}

func (m *Manager) SurveyCompleted(c echo.Context) bool {
	s := m.session(c)
	flag, _ := s.Values[surveyCompletedKey].(bool)
	return flag
}

func (m *Manager) SetSurveyCompleted(c echo.Context, completed bool) error {
	s := m.session(c)
	if completed {
		s.Values[surveyCompletedKey] = true
	} else {
		delete(s.Values, surveyCompletedKey)
	}
	return m.save(c, s)
}

func (m *Manager) AddFlash(c echo.Context, kind, message string) error {
	s := m.session(c)
	s.AddFlash(Flash{Kind: kind, Message: message})
	return m.save(c, s)
}

// Flashes drains and returns the pending flash messages.
func (m *Manager) Flashes(c echo.Context) []Flash {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	// Flashes() removed them from the session; persist the removal.
	_ = m.save(c, s)
	return flashes
}
