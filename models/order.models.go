package models

// Address is the shipping address collected at checkout.
type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Order is an immutable snapshot of cart contents, total and payment method,
// created once at checkout commit. It only disappears on explicit deletion.
type Order struct {
	ID            string     `json:"id"`
	Items         []CartLine `json:"items"`
	Total         float64    `json:"total"`
	Date          string     `json:"date"`
	PaymentMethod string     `json:"paymentMethod"`
}
