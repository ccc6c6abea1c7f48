package model

import "time"

type StaffApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"` // pending | approved | rejected
	CreatedAt time.Time `json:"createdAt"`
}
