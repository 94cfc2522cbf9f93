package model

import "time"

// Transaction is an append-only ledger entry. Entries are never updated or
// deleted. Type is free-form; "payment" and "sale" count toward revenue.
type Transaction struct {
	ID              int64     `json:"id"`
	OrderID         *int64    `json:"order_id"`
	Type            string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	TransactionDate time.Time `json:"transaction_date"`
	Notes           string    `json:"notes"`
}
