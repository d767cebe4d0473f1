package entity

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	OriginalPrice float64 `json:"original_price"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	Category      string  `json:"category"` // "shoes", "tops", "bottoms", "outerwear"
	Gender        string  `json:"gender"`   // "men", "women", "unisex"
}

// Catalog is the fixed set of sellable products. It is defined at process
// start and never mutated at runtime.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) *Catalog {
	return &Catalog{products: products}
}

// FindByID returns the product with the given id, or nil if no such product
// exists in the catalog.
func (c *Catalog) FindByID(id int) *Product {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i]
		}
	}
	return nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return c.products
}

// Featured returns the first n products, shown on the home page.
func (c *Catalog) Featured(n int) []Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	return c.products[:n]
}

// DefaultCatalog is the storefront inventory.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{
			ID:            1,
			Name:          "Nike Air Force 1",
			Brand:         "Nike",
			OriginalPrice: 90.00,
			Price:         38.00,
			Image:         "images/nike air force 1.png",
			Description:   "Iconic all-white leather sneakers. Lightly worn, still crisp. Streetwear essential.",
			Category:      "shoes",
			Gender:        "unisex",
		},
		{
			ID:            2,
			Name:          "Vintage Tommy Hilfiger Hoodie",
			Brand:         "Tommy Hilfiger",
			OriginalPrice: 70.00,
			Price:         22.00,
			Image:         "images/tommyhilfiger.jpg",
			Description:   "Y2K-style oversized hoodie with bold logo. Cozy fit and perfect for layering.",
			Category:      "tops",
			Gender:        "unisex",
		},
		{
			ID:            3,
			Name:          "Relaxed Jeans - 1996 D-Sire - Medium Blue",
			Brand:         "DIESEL",
			OriginalPrice: 125.00,
			Price:         55.00,
			Image:         "images/diesel jeans.jpg",
			Description:   "Medium-wash vintage fit with natural fading. 90s-inspired wide leg.",
			Category:      "bottoms",
			Gender:        "women",
		},
		{
			ID:            4,
			Name:          "DICE HOODIE PIGMENT DYED",
			Brand:         "Stüssy",
			OriginalPrice: 105.00,
			Price:         47.00,
			Image:         "images/stuussy.png",
			Description:   "Washed cream hoodie with dice graphic. Relaxed fit and heavy feel. Retro skater vibes.",
			Category:      "tops",
			Gender:        "men",
		},
		{
			ID:            5,
			Name:          "Classic Logo Blowout Bootcut Jeans",
			Brand:         "Miss Me",
			OriginalPrice: 103.00,
			Price:         42.50,
			Image:         "images/missme.png",
			Description:   "Low-rise bootcut jeans with rhinestone back pockets. Real early-2000s energy.",
			Category:      "outerwear",
			Gender:        "unisex",
		},
		{
			ID:            6,
			Name:          "Vintage Nike Varsity Jacket",
			Brand:         "Brandy Melville",
			OriginalPrice: 120.00,
			Price:         48.00,
			Image:         "images/nike varsity.png",
			Description:   "Two-tone varsity jacket with embroidered swoosh. Heavyweight and bold.",
			Category:      "tops",
			Gender:        "women",
		},
	})
}
