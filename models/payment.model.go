package models

// CardDetails carries the card payment fields entered at checkout.
type CardDetails struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	ExpiryMM string `json:"expiryMM"`
	ExpiryYY string `json:"expiryYY"`
	CVV      string `json:"cvv"`
}

// BankDetails carries the bank transfer fields entered at checkout.
type BankDetails struct {
	AccountNumber string `json:"accNo"`
	IFSC          string `json:"ifsc"`
	Name          string `json:"name"`
}
