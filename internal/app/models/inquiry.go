package models

import "time"

// Inquiry represents a contact-form message submitted by a site visitor.
type Inquiry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
	IsRead     bool      `json:"isRead"`
}
