package models

// Coupon is a named discount rule applied at the cart page. ProductID, when
// set, restricts the coupon to that single cart line.
type Coupon struct {
	Code      string  `json:"code"`
	Type      string  `json:"type"` // "flat" or "percent"
	Value     float64 `json:"value"`
	ProductID string  `json:"productId,omitempty"`
	Label     string  `json:"label"`
}

// AppliedCoupon is the persisted result of a coupon application, reused on
// the checkout and summary pages without recomputation.
type AppliedCoupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}
