package domain

import (
	"context"
	"strings"
	"time"
)

// User roles
const (
	RoleApplicant = "APPLICANT"
	RoleEmployer  = "EMPLOYER"
	RoleAdmin     = "ADMIN"
)

// ParseRole normalizes a client-supplied role string to a canonical role
// constant. Unknown and empty values default to APPLICANT, matching the
// registration flow where applicant is the default account type.
func ParseRole(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case RoleEmployer:
		return RoleEmployer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleApplicant
	}
}

// ValidRole reports whether s is one of the canonical role constants.
func ValidRole(s string) bool {
	switch s {
	case RoleApplicant, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Password holds the bcrypt hash. Never serialized.
	Password string `json:"-"`
	Role     string `json:"role"`
	// UserType mirrors Role in auth responses for frontend clients that
	// still read the old field name.
	UserType string `json:"userType,omitempty"`

	// Optional profile fields
	Phone          *string    `json:"phone,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Experience     *string    `json:"experience,omitempty"`
	CurrentRole    *string    `json:"currentRole,omitempty"`
	ExpectedSalary *string    `json:"expectedSalary,omitempty"`
	AvailableDate  *time.Time `json:"availableDate,omitempty"`
	Portfolio      *string    `json:"portfolio,omitempty"`
	Linkedin       *string    `json:"linkedin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Joined counts for admin listings
	JobsCount         *int64 `json:"jobsCount,omitempty"`
	ApplicationsCount *int64 `json:"applicationsCount,omitempty"`
}

// ProfileUpdate carries the mutable profile fields for PUT /users/profile.
// FirstName and LastName are required; the rest replace the stored values,
// nil clearing them (PUT semantics like the frontend sends).
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Phone          *string
	Location       *string
	Experience     *string
	CurrentRole    *string
	ExpectedSalary *string
	AvailableDate  *time.Time
	Portfolio      *string
	Linkedin       *string
}

// ProfileBackfill carries profile fields submitted alongside a registration
// or job application. Only non-empty values are written onto the user.
type ProfileBackfill struct {
	Phone          string
	Location       string
	Experience     string
	CurrentRole    string
	ExpectedSalary string
	AvailableDate  *time.Time
	Portfolio      string
	Linkedin       string
}

// Empty reports whether the backfill carries no values at all.
func (b ProfileBackfill) Empty() bool {
	return b.Phone == "" && b.Location == "" && b.Experience == "" &&
		b.CurrentRole == "" && b.ExpectedSalary == "" && b.AvailableDate == nil &&
		b.Portfolio == "" && b.Linkedin == ""
}

// UserStats aggregates platform-wide counts for the admin dashboard.
type UserStats struct {
	TotalUsers           int64            `json:"totalUsers"`
	TotalJobs            int64            `json:"totalJobs"`
	TotalApplications    int64            `json:"totalApplications"`
	UsersByRole          map[string]int64 `json:"usersByRole"`
	JobsByStatus         map[string]int64 `json:"jobsByStatus"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   string // canonical role constant, empty = all
	Search string // case-insensitive substring over first/last name and email
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByIDWithCounts additionally fills JobsCount and ApplicationsCount.
	GetByIDWithCounts(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, filter UserFilter, limit, offset int) ([]User, int64, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*User, error)
	Backfill(ctx context.Context, id int64, fields ProfileBackfill) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateRole(ctx context.Context, id int64, role string) (*User, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*UserStats, error)
}

// RegisterInput is the registration payload after boundary normalization.
type RegisterInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	Role      string
	Profile   ProfileBackfill
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// Admin operations
	ListUsers(ctx context.Context, actor Actor, filter UserFilter, page, pageSize int) (*PaginatedUsers, error)
	GetUser(ctx context.Context, actor Actor, id int64) (*User, error)
	SetRole(ctx context.Context, actor Actor, id int64, role string) (*User, error)
	DeleteUser(ctx context.Context, actor Actor, id int64) error
	GetStats(ctx context.Context, actor Actor) (*UserStats, error)
}

// PaginatedUsers is one page of the admin user listing.
type PaginatedUsers struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}
