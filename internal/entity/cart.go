package entity

import (
	"sort"
	"strconv"
)

// Cart maps product id (string form) to a positive quantity. It lives in a
// visitor's session; an entry with quantity 0 is removed, never retained.
type Cart map[string]int

// Add increments the quantity for a product, inserting the entry if absent.
// The product id is not validated against the catalog here; unresolvable ids
// are dropped when line items are computed.
func (c Cart) Add(productID, quantity int) {
	c[strconv.Itoa(productID)] += quantity
}

// Remove deletes the entry if present; no-op otherwise.
func (c Cart) Remove(productID int) {
	delete(c, strconv.Itoa(productID))
}

// SetQuantity sets the quantity for a product; a quantity <= 0 deletes the
// entry.
func (c Cart) SetQuantity(productID string, quantity int) {
	if quantity > 0 {
		c[productID] = quantity
	} else {
		delete(c, productID)
	}
}

// SortedIDs returns the entry keys in ascending product-id order, so line
// items come out in a stable order.
func (c Cart) SortedIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}

// IsEmpty reports whether the cart has no entries.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
