package service

import (
	"strconv"

	"github.com/ShopThryfted/Thryfted/internal/entity"
)

// LineItem is one cart entry resolved against the catalog.
type LineItem struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

// CartService resolves cart contents against the catalog.
type CartService struct {
	catalog *entity.Catalog
}

func NewCartService(catalog *entity.Catalog) *CartService {
	return &CartService{catalog: catalog}
}

// LineItems resolves every cart entry. Entries whose product id no longer
// resolves in the catalog are dropped from the returned view without
// mutating the stored cart. The grand total is the sum of the subtotals.
func (s *CartService) LineItems(cart entity.Cart) ([]LineItem, float64) {
	var items []LineItem
	var total float64

	for _, id := range cart.SortedIDs() {
		productID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		product := s.catalog.FindByID(productID)
		if product == nil {
			continue
		}
		item := LineItem{
			Product:  *product,
			Quantity: cart[id],
			Subtotal: product.Price * float64(cart[id]),
		}
		items = append(items, item)
		total += item.Subtotal
	}

	return items, total
}
