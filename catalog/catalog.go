// Package catalog provides the product data source: a generated in-memory
// catalog mirroring the original backend's sample data, and an HTTP client
// for a remote source. Both are read-only.
package catalog

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"

	"go-redstore/models"
)

// Source is the read-only product query interface consumed by the product
// controller.
type Source interface {
	Products(ctx context.Context, limit int) ([]models.Product, error)
	Product(ctx context.Context, id int) (models.ProductDetail, error)
}

// ErrNotFound reports a product id outside the catalog.
var ErrNotFound = errors.New("product not found")

var categories = []string{
	"Footwear", "Sportswear", "Cricket", "Football", "Basketball",
	"Tennis", "Badminton", "Swimming", "Gym", "Yoga", "Cycling",
	"Fitness Equipment", "Accessories", "Boxing", "Running",
}

var sampleTitles = map[string][]string{
	"Footwear":          {"Nike Air Zoom", "Adidas Ultraboost", "Puma Velocity Nitro"},
	"Sportswear":        {"Under Armour Tee", "Nike Dri-FIT Shorts", "Adidas Track Pants"},
	"Cricket":           {"SG Cricket Bat", "Kookaburra Helmet", "MRF Batting Gloves"},
	"Football":          {"Adidas Predator Boots", "Nike Football Jersey", "Puma Shin Guards"},
	"Basketball":        {"Spalding NBA Ball", "Nike Elite Shorts", "Jordan Basketball Shoes"},
	"Tennis":            {"Wilson Racket", "Head Tennis Balls", "Yonex Grip Tape"},
	"Badminton":         {"Yonex Racket", "Li-Ning Shuttlecocks", "Victor Kit Bag"},
	"Swimming":          {"Speedo Goggles", "Arena Swim Cap", "TYR Swim Fins"},
	"Gym":               {"Everlast Gloves", "Decathlon Dumbbells", "Resistance Bands"},
	"Yoga":              {"Manduka Yoga Mat", "Yoga Block Set", "Stretching Strap"},
	"Cycling":           {"BTwin Helmet", "Cycling Gloves", "Bike Water Bottle"},
	"Fitness Equipment": {"Treadmill", "Kettlebell Set", "Pull-up Bar"},
	"Accessories":       {"Sports Watch", "Sweatband Set", "Water Bottle"},
	"Boxing":            {"Boxing Gloves", "Punching Bag", "Mouth Guard"},
	"Running":           {"Running Belt", "Hydration Pack", "Reflective Vest"},
}

var imageURLs = map[string]string{
	"Footwear":          "https://images.unsplash.com/photo-1588361861040-ac9b1018f6d5",
	"Sportswear":        "https://images.unsplash.com/photo-1585036156261-1e2ac055414d",
	"Cricket":           "/images/cricket.jpg",
	"Football":          "/images/football.avif",
	"Basketball":        "/images/basketball.avif",
	"Tennis":            "/images/Tennis.jpeg",
	"Badminton":         "/images/yonexrackets.jpeg",
	"Swimming":          "/images/Swimming.jpg",
	"Gym":               "/images/gym.jpeg",
	"Yoga":              "/images/yogamat.jpeg",
	"Cycling":           "/images/Cycling.webp",
	"Fitness Equipment": "/images/FitnessEquipment.jpeg",
	"Accessories":       "/images/Accessories.jpeg",
	"Boxing":            "/images/Boxing.jpeg",
	"Running":           "/images/Running.jpeg",
}

// Memory is the generated in-memory catalog.
type Memory struct {
	products []models.Product
}

// Generate builds n products the way the original backend seeds its data:
// categories assigned round-robin, integer prices in 499-4499 and ratings in
// [3.5, 5.0] rounded to one decimal. Only Unsplash thumbnails get resizing
// query parameters.
func Generate(n int, seed int64) *Memory {
	rng := rand.New(rand.NewSource(seed))
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := categories[i%len(categories)]
		titles := sampleTitles[category]
		thumb := imageURLs[category]
		if strings.Contains(thumb, "unsplash.com") {
			thumb += "?w=600&auto=format&fit=crop&q=60"
		}
		products = append(products, models.Product{
			ID:        i + 1,
			Title:     titles[i%len(titles)],
			Price:     float64(rng.Intn(4000) + 499),
			Thumbnail: thumb,
			Rating:    math.Round((rng.Float64()*1.5+3.5)*10) / 10,
			Category:  category,
		})
	}
	return &Memory{products: products}
}

func (m *Memory) Products(ctx context.Context, limit int) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ps := m.products
	if limit > 0 && limit < len(ps) {
		ps = ps[:limit]
	}
	out := make([]models.Product, len(ps))
	copy(out, ps)
	return out, nil
}

func (m *Memory) Product(ctx context.Context, id int) (models.ProductDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ProductDetail{}, err
	}
	for _, p := range m.products {
		if p.ID == id {
			return models.ProductDetail{
				Product: p,
				Images:  []string{p.Thumbnail, p.Thumbnail},
			}, nil
		}
	}
	return models.ProductDetail{}, ErrNotFound
}
