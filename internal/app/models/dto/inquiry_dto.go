package dto

import "github.com/meera/campusboard/internal/app/models"

// InquiryListResponse wraps contact inquiries, newest first
type InquiryListResponse struct {
	Inquiries []models.Inquiry `json:"inquiries"`
	Total     int              `json:"total" example:"3"`
	Unread    int              `json:"unread" example:"1"`
}

// CreateInquiryRequest represents a public contact form submission
type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
