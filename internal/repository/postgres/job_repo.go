package postgres

import (
	"context"
	"fmt"

	"talenthub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, company, location, type, salary, description,
	              requirements, benefits, remote, status, employer_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Type, job.Salary, job.Description,
		job.Requirements, job.Benefits, job.Remote, job.Status, job.EmployerID,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	return mapError(err)
}

// GetByID retrieves a job with its employer projection and application count.
func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.company, j.location, j.type, j.salary, j.description,
		       j.requirements, j.benefits, j.remote, j.status, j.employer_id,
		       j.created_at, j.updated_at,
		       u.id, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS applications_count
		FROM jobs j
		JOIN users u ON j.employer_id = u.id
		WHERE j.id = $1`

	var job domain.Job
	var employer domain.JobEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary, &job.Description,
		&job.Requirements, &job.Benefits, &job.Remote, &job.Status, &job.EmployerID,
		&job.CreatedAt, &job.UpdatedAt,
		&employer.ID, &employer.FirstName, &employer.LastName,
		&job.ApplicationsCount,
	)
	if err != nil {
		return nil, mapError(err)
	}
	job.Employer = &employer
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Status != "" {
		n++
		where += fmt.Sprintf(" AND j.status = $%d", n)
		args = append(args, filter.Status)
	}
	if filter.EmployerID != 0 {
		n++
		where += fmt.Sprintf(" AND j.employer_id = $%d", n)
		args = append(args, filter.EmployerID)
	}
	if filter.Type != "" {
		n++
		where += fmt.Sprintf(" AND j.type = $%d", n)
		args = append(args, filter.Type)
	}
	if filter.Search != "" {
		n++
		where += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.company ILIKE $%d OR j.description ILIKE $%d)", n, n, n)
		args = append(args, "%"+filter.Search+"%")
	}
	switch filter.Location {
	case "":
	case "remote":
		where += " AND j.remote = TRUE"
	case "onsite":
		where += " AND j.remote = FALSE"
	default:
		n++
		where += fmt.Sprintf(" AND j.location ILIKE $%d", n)
		args = append(args, "%"+filter.Location+"%")
	}

	query := `
		SELECT j.id, j.title, j.company, j.location, j.type, j.salary, j.description,
		       j.requirements, j.benefits, j.remote, j.status, j.employer_id,
		       j.created_at, j.updated_at,
		       u.id, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS applications_count
		FROM jobs j
		JOIN users u ON j.employer_id = u.id` + where +
		fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var employer domain.JobEmployer
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary, &job.Description,
			&job.Requirements, &job.Benefits, &job.Remote, &job.Status, &job.EmployerID,
			&job.CreatedAt, &job.UpdatedAt,
			&employer.ID, &employer.FirstName, &employer.LastName,
			&job.ApplicationsCount,
		); err != nil {
			return nil, 0, err
		}
		job.Employer = &employer
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
	              title = $2,
	              company = $3,
	              location = $4,
	              type = $5,
	              salary = $6,
	              description = $7,
	              requirements = $8,
	              benefits = $9,
	              remote = $10,
	              status = $11,
	              updated_at = NOW()
	          WHERE id = $1
	          RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Salary,
		job.Description, job.Requirements, job.Benefits, job.Remote, job.Status,
	).Scan(&job.UpdatedAt)
	return mapError(err)
}

// Delete removes the job. Its applications cascade at the schema level.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
