package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository   *AdminRepository
	FacultyRepository *FacultyRepository
	BuzzRepository    *BuzzRepository
	InquiryRepository *InquiryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:   NewAdminRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		BuzzRepository:    NewBuzzRepository(db),
		InquiryRepository: NewInquiryRepository(db),
	}
}
