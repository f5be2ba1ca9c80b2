package domain

import "time"

// Message is an inbound contact-form entry. Everything except the read flag
// is immutable once stored.
type Message struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Read      bool      `json:"read"`
}
