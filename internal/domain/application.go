package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Application statuses. APPLIED is the entry state. Transitions are
// permissive: any owner/admin update may set any of the PATCH-able values
// (APPLIED, SHORTLISTED, REJECTED, HIRED) at any time.
const (
	ApplicationStatusApplied     = "APPLIED"
	ApplicationStatusReviewed    = "REVIEWED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusHired       = "HIRED"
)

// ValidApplicationStatuses lists the statuses accepted by the status-update
// endpoint, used in error payloads.
var ValidApplicationStatuses = []string{
	ApplicationStatusApplied,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

// ParseApplicationStatus uppercases and validates a status submitted to the
// status-update endpoint. REVIEWED exists as a stored state but is not an
// accepted PATCH target.
func ParseApplicationStatus(s string) (string, error) {
	st := strings.ToUpper(strings.TrimSpace(s))
	for _, valid := range ValidApplicationStatuses {
		if st == valid {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

type Application struct {
	ID              int64     `json:"id"`
	JobID           int64     `json:"-"`
	ApplicantID     int64     `json:"-"`
	Status          string    `json:"status"`
	CoverLetter     *string   `json:"coverLetter"`
	ResumePath      string    `json:"resumePath"`
	CoverLetterPath *string   `json:"coverLetterPath"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Joined projections for list/detail responses
	Job       *Job  `json:"job,omitempty"`
	Applicant *User `json:"applicant,omitempty"`
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	JobID       int64  // 0 = all jobs
	ApplicantID int64  // 0 = all applicants
	Status      string // canonical status, empty = all
}

type ApplicationRepository interface {
	// Create inserts the application. A concurrent duplicate for the same
	// (job, applicant) pair must fail with ErrDuplicate via the unique
	// constraint rather than relying on a prior existence check.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*Application, error)
	Fetch(ctx context.Context, filter ApplicationFilter, limit, offset int) ([]Application, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

// ApplyInput is the multipart application payload after the upload layer has
// persisted the submitted documents.
type ApplyInput struct {
	JobID           int64
	CoverLetter     string
	ResumePath      string
	CoverLetterPath string
	Backfill        ProfileBackfill
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor Actor, input ApplyInput) (*Application, error)
	ListMyApplications(ctx context.Context, actor Actor, status string, page, pageSize int) ([]Application, Pagination, error)
	ListForJob(ctx context.Context, actor Actor, jobID int64, status string, page, pageSize int) ([]Application, Pagination, error)
	GetApplication(ctx context.Context, actor Actor, id int64) (*Application, error)
	UpdateStatus(ctx context.Context, actor Actor, id int64, status string) (*Application, error)
	HasApplied(ctx context.Context, actor Actor, jobID int64) (*Application, error)
}
