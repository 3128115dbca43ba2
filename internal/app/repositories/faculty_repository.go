package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
	"github.com/meera/campusboard/internal/pkg/logger"
)

const joiningDateLayout = "2006-01-02"

// FacultyRepository handles faculty database operations. Qualifications live
// in a child table and are written in the same transaction as the parent row,
// with an explicit position column preserving user-entry order.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every faculty record with its qualifications, ordered by
// name ascending.
func (r *FacultyRepository) GetAll(ctx context.Context) ([]models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "designation", "department", "joining_date", "experience", "employment_type", "avatar").
		From("faculty").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all faculty SQL")
		return nil, fmt.Errorf("failed to build get all faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	faculties := []models.Faculty{}
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during get all")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	for i := range faculties {
		quals, err := r.getQualifications(ctx, faculties[i].ID)
		if err != nil {
			return nil, err
		}
		faculties[i].Qualifications = quals
	}

	return faculties, nil
}

// GetByID retrieves a single faculty record with its qualifications.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "designation", "department", "joining_date", "experience", "employment_type", "avatar").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return models.Faculty{}, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)
	faculty, err := scanFaculty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Faculty{}, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("facultyID", id).Msg("Error scanning faculty row")
		return models.Faculty{}, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	quals, err := r.getQualifications(ctx, faculty.ID)
	if err != nil {
		return models.Faculty{}, err
	}
	faculty.Qualifications = quals

	return faculty, nil
}

// Create inserts a faculty record and its qualifications in one transaction.
func (r *FacultyRepository) Create(ctx context.Context, faculty models.Faculty) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error beginning create faculty transaction")
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Insert("faculty").
		Columns("id", "name", "designation", "department", "joining_date", "experience", "employment_type", "avatar").
		Values(faculty.ID, faculty.Name, faculty.Designation, faculty.Department, faculty.JoiningDate, faculty.Experience, faculty.EmploymentType.String(), faculty.Avatar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}

	if err := r.insertQualifications(ctx, tx, faculty.ID, faculty.Qualifications); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error committing create faculty transaction")
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Update rewrites a faculty record. Qualifications are replaced wholesale so
// the stored order always matches the submitted order.
func (r *FacultyRepository) Update(ctx context.Context, faculty models.Faculty) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error beginning update faculty transaction")
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Update("faculty").
		SetMap(map[string]interface{}{
			"name":            faculty.Name,
			"designation":     faculty.Designation,
			"department":      faculty.Department,
			"joining_date":    faculty.JoiningDate,
			"experience":      faculty.Experience,
			"employment_type": faculty.EmploymentType.String(),
			"avatar":          faculty.Avatar,
		}).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	delSql, delArgs, err := r.sb.Delete("qualifications").
		Where(squirrel.Eq{"faculty_id": faculty.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete qualifications SQL")
		return fmt.Errorf("failed to build delete qualifications query: %w", err)
	}
	if _, err := tx.Exec(ctx, delSql, delArgs...); err != nil {
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error deleting prior qualifications")
		return fmt.Errorf("error replacing qualifications: %w", err)
	}

	if err := r.insertQualifications(ctx, tx, faculty.ID, faculty.Qualifications); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error committing update faculty transaction")
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Delete removes a faculty record. Qualifications go with it via the foreign
// key cascade.
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete faculty SQL")
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

func (r *FacultyRepository) getQualifications(ctx context.Context, facultyID string) ([]models.Qualification, error) {
	sql, args, err := r.sb.Select("degree", "passing_year", "college", "specialization").
		From("qualifications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get qualifications SQL")
		return nil, fmt.Errorf("failed to build get qualifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID).Msg("Error executing get qualifications query")
		return nil, fmt.Errorf("error querying qualifications: %w", err)
	}
	defer rows.Close()

	quals := []models.Qualification{}
	for rows.Next() {
		var q models.Qualification
		if err := rows.Scan(&q.Degree, &q.PassingYear, &q.College, &q.Specialization); err != nil {
			logger.Error().Err(err).Msg("Error scanning qualification row")
			return nil, fmt.Errorf("error scanning qualification row: %w", err)
		}
		quals = append(quals, q)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating qualification rows")
		return nil, fmt.Errorf("error iterating qualification rows: %w", err)
	}

	return quals, nil
}

func (r *FacultyRepository) insertQualifications(ctx context.Context, tx pgx.Tx, facultyID string, quals []models.Qualification) error {
	if len(quals) == 0 {
		return nil
	}

	builder := r.sb.Insert("qualifications").
		Columns("faculty_id", "position", "degree", "passing_year", "college", "specialization")
	for i, q := range quals {
		builder = builder.Values(facultyID, i, q.Degree, q.PassingYear, q.College, q.Specialization)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert qualifications SQL")
		return fmt.Errorf("failed to build insert qualifications query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID).Msg("Error inserting qualifications")
		return fmt.Errorf("error inserting qualifications: %w", err)
	}
	return nil
}

// scanFaculty reads one faculty row. joining_date is a DATE column and is
// rendered back to the canonical YYYY-MM-DD string.
func scanFaculty(row pgx.Row) (models.Faculty, error) {
	var (
		faculty        models.Faculty
		joiningDate    time.Time
		employmentType string
	)
	err := row.Scan(&faculty.ID, &faculty.Name, &faculty.Designation, &faculty.Department, &joiningDate, &faculty.Experience, &employmentType, &faculty.Avatar)
	if err != nil {
		return models.Faculty{}, err
	}
	faculty.JoiningDate = joiningDate.Format(joiningDateLayout)
	faculty.EmploymentType = models.EmploymentType(employmentType)
	return faculty, nil
}
