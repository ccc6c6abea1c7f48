package model

import "time"

type Issue struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `json:"title"`
	Email         string    `json:"email"` // reporter email
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	PaymentStatus string    `json:"paymentStatus,omitempty"` // "" until paid, then "paid"
	TrackingID    string    `json:"trackingId,omitempty"`    // assigned by payment reconciliation
	CreatedAt     time.Time `json:"createdAt"`
}
