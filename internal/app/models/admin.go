package models

// Admin represents a dashboard administrator account.
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Avatar       string `json:"avatar,omitempty"`
}
