package postgres

import (
	"context"
	"fmt"

	"talenthub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, first_name, last_name, email, password, role,
	phone, location, experience, current_role_title, expected_salary,
	available_date, portfolio, linkedin, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role,
		&u.Phone, &u.Location, &u.Experience, &u.CurrentRole, &u.ExpectedSalary,
		&u.AvailableDate, &u.Portfolio, &u.Linkedin, &u.CreatedAt, &u.UpdatedAt,
	)
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password, role,
	              phone, location, experience, current_role_title, expected_salary,
	              available_date, portfolio, linkedin)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password, user.Role,
		user.Phone, user.Location, user.Experience, user.CurrentRole, user.ExpectedSalary,
		user.AvailableDate, user.Portfolio, user.Linkedin,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetByIDWithCounts retrieves a user with job and application counts for
// the admin detail view.
func (r *userRepo) GetByIDWithCounts(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + `,
	              (SELECT COUNT(*) FROM jobs j WHERE j.employer_id = users.id) AS jobs_count,
	              (SELECT COUNT(*) FROM applications a WHERE a.applicant_id = users.id) AS applications_count
	          FROM users WHERE id = $1`
	var user domain.User
	var jobsCount, applicationsCount int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password, &user.Role,
		&user.Phone, &user.Location, &user.Experience, &user.CurrentRole, &user.ExpectedSalary,
		&user.AvailableDate, &user.Portfolio, &user.Linkedin, &user.CreatedAt, &user.UpdatedAt,
		&jobsCount, &applicationsCount,
	)
	if err != nil {
		return nil, mapError(err)
	}
	user.JobsCount = &jobsCount
	user.ApplicationsCount = &applicationsCount
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, email), &user); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Fetch lists users for the admin panel with per-user job and application
// counts joined in.
func (r *userRepo) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Role != "" {
		n++
		where += fmt.Sprintf(" AND u.role = $%d", n)
		args = append(args, filter.Role)
	}
	if filter.Search != "" {
		n++
		where += fmt.Sprintf(" AND (u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)", n, n, n)
		args = append(args, "%"+filter.Search+"%")
	}

	query := `SELECT u.id, u.first_name, u.last_name, u.email, u.role,
	              u.phone, u.location, u.experience, u.current_role_title, u.expected_salary,
	              u.available_date, u.portfolio, u.linkedin, u.created_at, u.updated_at,
	              (SELECT COUNT(*) FROM jobs j WHERE j.employer_id = u.id) AS jobs_count,
	              (SELECT COUNT(*) FROM applications a WHERE a.applicant_id = u.id) AS applications_count
	          FROM users u` + where +
		fmt.Sprintf(" ORDER BY u.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var jobsCount, applicationsCount int64
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
			&u.Phone, &u.Location, &u.Experience, &u.CurrentRole, &u.ExpectedSalary,
			&u.AvailableDate, &u.Portfolio, &u.Linkedin, &u.CreatedAt, &u.UpdatedAt,
			&jobsCount, &applicationsCount,
		); err != nil {
			return nil, 0, err
		}
		u.JobsCount = &jobsCount
		u.ApplicationsCount = &applicationsCount
		users = append(users, u)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (*domain.User, error) {
	query := `UPDATE users SET
	              first_name = $2,
	              last_name = $3,
	              phone = $4,
	              location = $5,
	              experience = $6,
	              current_role_title = $7,
	              expected_salary = $8,
	              available_date = $9,
	              portfolio = $10,
	              linkedin = $11,
	              updated_at = NOW()
	          WHERE id = $1
	          RETURNING ` + userColumns
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query,
		id, upd.FirstName, upd.LastName,
		upd.Phone, upd.Location, upd.Experience, upd.CurrentRole, upd.ExpectedSalary,
		upd.AvailableDate, upd.Portfolio, upd.Linkedin,
	), &user)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Backfill writes only the fields the caller provided, leaving the rest of
// the profile untouched. Used when an application carries profile data.
func (r *userRepo) Backfill(ctx context.Context, id int64, fields domain.ProfileBackfill) error {
	query := `UPDATE users SET
	              phone = COALESCE(NULLIF($2, ''), phone),
	              location = COALESCE(NULLIF($3, ''), location),
	              experience = COALESCE(NULLIF($4, ''), experience),
	              current_role_title = COALESCE(NULLIF($5, ''), current_role_title),
	              expected_salary = COALESCE(NULLIF($6, ''), expected_salary),
	              available_date = COALESCE($7, available_date),
	              portfolio = COALESCE(NULLIF($8, ''), portfolio),
	              linkedin = COALESCE(NULLIF($9, ''), linkedin),
	              updated_at = NOW()
	          WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		id, fields.Phone, fields.Location, fields.Experience, fields.CurrentRole,
		fields.ExpectedSalary, fields.AvailableDate, fields.Portfolio, fields.Linkedin,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	result, err := r.db.Exec(ctx, `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id, role), &user); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Delete removes the user. Jobs and applications cascade at the schema level.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats aggregates platform totals and per-role/per-status breakdowns for
// the admin overview.
func (r *userRepo) Stats(ctx context.Context) (*domain.UserStats, error) {
	stats := &domain.UserStats{
		UsersByRole:          map[string]int64{},
		JobsByStatus:         map[string]int64{},
		ApplicationsByStatus: map[string]int64{},
	}

	if err := r.db.QueryRow(ctx, `SELECT
	        (SELECT COUNT(*) FROM users),
	        (SELECT COUNT(*) FROM jobs),
	        (SELECT COUNT(*) FROM applications)`).
		Scan(&stats.TotalUsers, &stats.TotalJobs, &stats.TotalApplications); err != nil {
		return nil, err
	}

	groupBys := []struct {
		query string
		into  map[string]int64
	}{
		{`SELECT role, COUNT(*) FROM users GROUP BY role`, stats.UsersByRole},
		{`SELECT status, COUNT(*) FROM jobs GROUP BY status`, stats.JobsByStatus},
		{`SELECT status, COUNT(*) FROM applications GROUP BY status`, stats.ApplicationsByStatus},
	}
	for _, g := range groupBys {
		rows, err := r.db.Query(ctx, g.query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var key string
			var count int64
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return nil, err
			}
			g.into[key] = count
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
