package models

// ListEntry is a favorites or watchlist member: a product reference carrying
// a best-effort image. Toggle payloads may arrive with any of image,
// thumbnail or an images list populated.
type ListEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	Image     string   `json:"image,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// ResolveImage picks the first usable image reference: image, then
// thumbnail, then the first of the images list.
func (e ListEntry) ResolveImage() string {
	var first string
	if len(e.Images) > 0 {
		first = e.Images[0]
	}
	return firstNonEmpty(e.Image, e.Thumbnail, first)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
