package model

import "time"

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Amount        float64   `json:"amount"` // major currency units (session total / 100)
	Email         string    `gorm:"index" json:"email"`
	IssueID       uint      `json:"issueId"`
	TransactionID string    `gorm:"uniqueIndex" json:"transactionId"` // idempotency key
	PaymentStatus string    `json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
	TrackingID    string    `json:"trackingId"`
}
