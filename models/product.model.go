package models

// Product is one catalog entry. Immutable once generated.
type Product struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
	Rating    float64 `json:"rating"`
	Category  string  `json:"category"`
}

// ProductDetail is the per-id record served by the catalog detail endpoint.
type ProductDetail struct {
	Product
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
}
