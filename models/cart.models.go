package models

// CartLine is one product (optionally variant-qualified) and its quantity
// within the active cart. The id is the product id or a product+variant
// composite, unique per line. Quantity is always at least 1; a line whose
// quantity would drop to zero is removed instead.
type CartLine struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is the session's cart snapshot plus its derived subtotal.
type Cart struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
}
