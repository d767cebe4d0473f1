package session

import (
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// MemoryCartStore keeps carts in process memory keyed by remote address.
// Visitor identity by address is only good enough for tests, which is the
// sole place this implementation is used.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]entity.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]entity.Cart)}
}

func (s *MemoryCartStore) Cart(c echo.Context) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := entity.Cart{}
	for id, qty := range s.carts[c.RealIP()] {
		cart[id] = qty
	}
	return cart
}

func (s *MemoryCartStore) SaveCart(c echo.Context, cart entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := entity.Cart{}
	for id, qty := range cart {
		copied[id] = qty
	}
	s.carts[c.RealIP()] = copied
	return nil
}
