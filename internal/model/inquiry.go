package model

import "time"

// Inquiry is a one-way contact-form submission. Never updated or deleted
// through the API.
type Inquiry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     *string   `json:"phone"`
	Service   *string   `json:"service"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
