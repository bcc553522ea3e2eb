package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// Job employment types
const (
	JobTypeFullTime   = "FULL_TIME"
	JobTypePartTime   = "PART_TIME"
	JobTypeContract   = "CONTRACT"
	JobTypeInternship = "INTERNSHIP"
)

// Job lifecycle statuses. FLAGGED and REJECTED are moderation states; only
// ACTIVE jobs accept applications and appear in the default public listing.
const (
	JobStatusActive   = "ACTIVE"
	JobStatusInactive = "INACTIVE"
	JobStatusDraft    = "DRAFT"
	JobStatusFlagged  = "FLAGGED"
	JobStatusRejected = "REJECTED"
)

// ValidJobTypes lists the accepted employment types, used in error payloads.
var ValidJobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ParseJobType uppercases and validates a client-supplied employment type.
func ParseJobType(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return t, nil
	}
	return "", fmt.Errorf("invalid job type %q", s)
}

// ParseJobStatus uppercases and validates a job status.
func ParseJobStatus(s string) (string, error) {
	st := strings.ToUpper(strings.TrimSpace(s))
	switch st {
	case JobStatusActive, JobStatusInactive, JobStatusDraft, JobStatusFlagged, JobStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("invalid job status %q", s)
}

type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       *string   `json:"salary"`
	Description  string    `json:"description"`
	Requirements *string   `json:"requirements"`
	Benefits     *string   `json:"benefits"`
	Remote       bool      `json:"remote"`
	Status       string    `json:"status"`
	EmployerID   int64     `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Derived at read time
	PostedDate        string       `json:"postedDate,omitempty"`
	ApplicationsCount int64        `json:"applicationsCount"`
	Employer          *JobEmployer `json:"employer,omitempty"`
}

// JobEmployer is the employer projection embedded in job responses.
type JobEmployer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// JobFilter narrows job listings.
type JobFilter struct {
	Search     string // case-insensitive substring over title, company, description
	Type       string // canonical job type, empty = all
	Location   string // "remote", "onsite", or a location substring; empty = all
	Status     string // canonical job status, empty = all
	EmployerID int64  // scope to one employer, 0 = all
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

// JobUpdate holds a partial job mutation. Nil fields are left unchanged.
type JobUpdate struct {
	Title        *string
	Company      *string
	Location     *string
	Type         *string
	Salary       *string
	Description  *string
	Requirements *string
	Benefits     *string
	Remote       *bool
	Status       *string
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, Pagination, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, actor Actor, job *Job) (*Job, error)
	UpdateJob(ctx context.Context, actor Actor, id int64, upd JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, actor Actor, id int64) error
	ListMyJobs(ctx context.Context, actor Actor, status string, page, pageSize int) ([]Job, Pagination, error)
}

// FormatPostedDate renders a coarse "posted N ago" label from the job's
// creation time. Thresholds mirror the listing UI: exact day, then ceiling
// weeks under 30 days, ceiling months under a year, ceiling years beyond.
func FormatPostedDate(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = -diff
	}
	days := ceilDays(diff)

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", (days+6)/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", (days+29)/30)
	default:
		return fmt.Sprintf("%d years ago", (days+364)/365)
	}
}

func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
