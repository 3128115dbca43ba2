package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/meera/campusboard/internal/app/models"
	appRepos "github.com/meera/campusboard/internal/app/repositories"
	"github.com/meera/campusboard/internal/config"
	"github.com/meera/campusboard/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account and, on an empty
// database, a starter faculty and buzz collection. Seeding runs after
// migrations and never overwrites existing rows.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	var finalErr error

	if err := seedAdmin(ctx, cfg, repos.AdminRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedFaculty(ctx, repos.FacultyRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedBuzz(ctx, repos.BuzzRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, cfg *config.Config, adminRepo *appRepos.AdminRepository, lgr zerolog.Logger) error {
	count, err := adminRepo.CountAdmins(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin accounts")
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("No admin password configured, skipping default admin creation")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := appModels.Admin{
		ID:           uuid.New().String(),
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}

func seedFaculty(ctx context.Context, facultyRepo *appRepos.FacultyRepository, lgr zerolog.Logger) error {
	existing, err := facultyRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking faculty collection")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []appModels.Faculty{
		{
			Name:           "Dr. Anjali Sharma",
			Designation:    "Professor",
			Department:     "CSE",
			JoiningDate:    "2010-07-15",
			Experience:     "15 years",
			EmploymentType: appModels.EmploymentRegular,
			Qualifications: []appModels.Qualification{
				{Degree: "Ph.D.", PassingYear: "2008", College: "IIT Delhi", Specialization: "Machine Learning"},
				{Degree: "M.Tech", PassingYear: "2003", College: "NIT Trichy", Specialization: "Computer Science"},
			},
		},
		{
			Name:           "Prof. Rajesh Kumar",
			Designation:    "Associate Professor",
			Department:     "ECE",
			JoiningDate:    "2014-01-20",
			Experience:     "11 years",
			EmploymentType: appModels.EmploymentRegular,
			Qualifications: []appModels.Qualification{
				{Degree: "M.Tech", PassingYear: "2010", College: "Anna University", Specialization: "VLSI Design"},
			},
		},
		{
			Name:           "Dr. Meena Iyer",
			Designation:    "Assistant Professor",
			Department:     "CSE",
			JoiningDate:    "2019-06-01",
			Experience:     "6 years",
			EmploymentType: appModels.EmploymentContract,
			Qualifications: []appModels.Qualification{
				{Degree: "Ph.D.", PassingYear: "2018", College: "IISc Bangalore", Specialization: "Distributed Systems"},
			},
		},
		{
			Name:           "Prof. Suresh Nair",
			Designation:    "Visiting Faculty",
			Department:     "Mathematics",
			JoiningDate:    "2022-08-10",
			Experience:     "20 years",
			EmploymentType: appModels.EmploymentVisiting,
			Qualifications: []appModels.Qualification{
				{Degree: "M.Sc", PassingYear: "1999", College: "University of Kerala", Specialization: "Applied Mathematics"},
			},
		},
	}

	for _, faculty := range samples {
		faculty.ID = uuid.New().String()
		if err := facultyRepo.Create(ctx, faculty); err != nil {
			lgr.Error().Err(err).Str("name", faculty.Name).Msg("Error seeding faculty member")
			return err
		}
	}

	lgr.Info().Int("count", len(samples)).Msg("Seeded starter faculty collection")
	return nil
}

func seedBuzz(ctx context.Context, buzzRepo *appRepos.BuzzRepository, lgr zerolog.Logger) error {
	existing, err := buzzRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking buzz collection")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	samples := []appModels.Buzz{
		{
			Title:   "Annual Tech Fest Announced",
			Content: "The annual technology festival will be held next month. Student registrations open this week.",
		},
		{
			Title:   "New Research Lab Inaugurated",
			Content: "A new AI research laboratory has been inaugurated in the CSE block, open to all final-year project groups.",
		},
		{
			Title:   "Campus Placement Drive",
			Content: "The placement cell has announced the winter campus drive schedule. Eligible students should register before Friday.",
		},
	}

	for i, buzz := range samples {
		buzz.ID = uuid.New().String()
		// Stagger timestamps so the feed has a stable most-recent-first order
		buzz.CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		buzz.UpdatedAt = buzz.CreatedAt
		if err := buzzRepo.Create(ctx, buzz); err != nil {
			lgr.Error().Err(err).Str("title", buzz.Title).Msg("Error seeding buzz item")
			return err
		}
	}

	lgr.Info().Int("count", len(samples)).Msg("Seeded starter buzz feed")
	return nil
}
