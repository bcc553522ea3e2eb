package postgres

import (
	"context"
	"fmt"

	"talenthub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, status, cover_letter, resume_path, cover_letter_path)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.Status, app.CoverLetter, app.ResumePath, app.CoverLetterPath,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	return mapError(err)
}

// GetByID retrieves an application with its job and applicant projections.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter,
		       a.resume_path, a.cover_letter_path, a.created_at, a.updated_at,
		       j.id, j.title, j.company, j.location, j.type, j.salary, j.remote,
		       j.status, j.employer_id, j.created_at,
		       u.id, u.first_name, u.last_name, u.email, u.phone, u.location
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	var job domain.Job
	var applicant domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
		&app.ResumePath, &app.CoverLetterPath, &app.CreatedAt, &app.UpdatedAt,
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary, &job.Remote,
		&job.Status, &job.EmployerID, &job.CreatedAt,
		&applicant.ID, &applicant.FirstName, &applicant.LastName, &applicant.Email, &applicant.Phone, &applicant.Location,
	)
	if err != nil {
		return nil, mapError(err)
	}
	app.Job = &job
	app.Applicant = &applicant
	return &app, nil
}

func (r *applicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	query := `SELECT id, job_id, applicant_id, status, cover_letter, resume_path,
	              cover_letter_path, created_at, updated_at
	          FROM applications WHERE job_id = $1 AND applicant_id = $2`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
		&app.ResumePath, &app.CoverLetterPath, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}

func (r *applicationRepo) Fetch(ctx context.Context, filter domain.ApplicationFilter, limit, offset int) ([]domain.Application, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0

	if filter.JobID != 0 {
		n++
		where += fmt.Sprintf(" AND a.job_id = $%d", n)
		args = append(args, filter.JobID)
	}
	if filter.ApplicantID != 0 {
		n++
		where += fmt.Sprintf(" AND a.applicant_id = $%d", n)
		args = append(args, filter.ApplicantID)
	}
	if filter.Status != "" {
		n++
		where += fmt.Sprintf(" AND a.status = $%d", n)
		args = append(args, filter.Status)
	}

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter,
		       a.resume_path, a.cover_letter_path, a.created_at, a.updated_at,
		       j.id, j.title, j.company, j.location, j.type, j.salary, j.remote,
		       j.status, j.employer_id, j.created_at,
		       u.id, u.first_name, u.last_name, u.email, u.phone, u.location
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id` + where +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		var applicant domain.User
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
			&app.ResumePath, &app.CoverLetterPath, &app.CreatedAt, &app.UpdatedAt,
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary, &job.Remote,
			&job.Status, &job.EmployerID, &job.CreatedAt,
			&applicant.ID, &applicant.FirstName, &applicant.LastName, &applicant.Email, &applicant.Phone, &applicant.Location,
		); err != nil {
			return nil, 0, err
		}
		app.Job = &job
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM applications a` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1
	          RETURNING id, job_id, applicant_id, status, cover_letter, resume_path,
	              cover_letter_path, created_at, updated_at`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
		&app.ResumePath, &app.CoverLetterPath, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}
