package dto

import "github.com/meera/campusboard/internal/app/models"

// BuzzListResponse wraps the announcement feed, most recent first
type BuzzListResponse struct {
	Items []models.Buzz `json:"items"`
	Total int           `json:"total" example:"4"`
}
