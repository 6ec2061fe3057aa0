package models

// PaymentInput is the request shape for the mock payment flow.
type PaymentInput struct {
	BookingID     string  `json:"booking_id,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// Payment is the created-payment response shape.
type Payment struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at"`
}

// PaymentVerification is the verify-payment response shape.
type PaymentVerification struct {
	Verified      bool   `json:"verified"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
