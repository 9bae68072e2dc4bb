package models

// CartLine is one product entry in the cart. The display fields are snapshotted
// from the product at add time so the cart renders even when the catalog is
// unreachable.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// NewCartLine snapshots a product into a cart line.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Quantity:    quantity,
	}
}
