package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"talenthub-backend/internal/domain"
	"talenthub-backend/internal/policy"
	"talenthub-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, input domain.ApplyInput) (*domain.Application, error) {
	if !policy.CanApply(actor) {
		return nil, apperror.Forbidden("Applicant access required")
	}
	if input.JobID == 0 {
		return nil, apperror.BadRequest("Job ID is required")
	}

	job, err := u.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job is not accepting applications")
	}

	if _, err := u.applicationRepo.GetByJobAndApplicant(ctx, input.JobID, actor.ID); err == nil {
		return nil, apperror.Conflict("You have already applied for this job")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if input.ResumePath == "" {
		return nil, apperror.BadRequest("Resume is required")
	}

	app := &domain.Application{
		JobID:       input.JobID,
		ApplicantID: actor.ID,
		Status:      domain.ApplicationStatusApplied,
		ResumePath:  input.ResumePath,
	}
	if input.CoverLetter != "" {
		app.CoverLetter = &input.CoverLetter
	}
	if input.CoverLetterPath != "" {
		app.CoverLetterPath = &input.CoverLetterPath
	}

	// The unique (job_id, applicant_id) constraint settles concurrent
	// submits; the pre-check above only produces the friendly message.
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}

	// Profile fields submitted with the application update the applicant's
	// stored profile. Failure here does not fail the submission.
	if !input.Backfill.Empty() {
		if err := u.userRepo.Backfill(ctx, actor.ID, input.Backfill); err != nil {
			slog.Warn("profile backfill failed", "userId", actor.ID, "error", err)
		}
	}

	slog.Info("application submitted", "applicationId", app.ID, "jobId", input.JobID, "applicantId", actor.ID)
	return u.GetApplication(ctx, actor, app.ID)
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context, actor domain.Actor, status string, page, pageSize int) ([]domain.Application, domain.Pagination, error) {
	if !policy.CanApply(actor) {
		return nil, domain.Pagination{}, apperror.Forbidden("Applicant access required")
	}

	filter := domain.ApplicationFilter{ApplicantID: actor.ID, Status: status}
	page, pageSize = domain.ClampPage(page, pageSize)
	apps, total, err := u.applicationRepo.Fetch(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}

	now := time.Now()
	for i := range apps {
		if apps[i].Job != nil {
			apps[i].Job.PostedDate = domain.FormatPostedDate(apps[i].Job.CreatedAt, now)
		}
	}
	return apps, domain.NewPagination(page, pageSize, total), nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, actor domain.Actor, jobID int64, status string, page, pageSize int) ([]domain.Application, domain.Pagination, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Pagination{}, apperror.NotFound("Job not found")
		}
		return nil, domain.Pagination{}, apperror.Internal(err)
	}
	if !policy.CanManageJob(actor, job) {
		return nil, domain.Pagination{}, apperror.Forbidden("Not authorized to view applications for this job")
	}

	filter := domain.ApplicationFilter{JobID: jobID, Status: status}
	page, pageSize = domain.ClampPage(page, pageSize)
	apps, total, err := u.applicationRepo.Fetch(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}
	return apps, domain.NewPagination(page, pageSize, total), nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, actor domain.Actor, id int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !policy.CanViewApplication(actor, app, app.Job) {
		return nil, apperror.Forbidden("Not authorized to view this application")
	}
	return app, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Actor, id int64, status string) (*domain.Application, error) {
	if status == "" {
		return nil, apperror.BadRequest("Status is required")
	}
	parsed, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, apperror.BadRequest("Invalid status")
	}

	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !policy.CanDecideApplication(actor, app.Job) {
		return nil, apperror.Forbidden("Not authorized to update this application")
	}

	updated, err := u.applicationRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	updated.Job = app.Job
	updated.Applicant = app.Applicant

	slog.Info("application status updated", "applicationId", id, "status", parsed, "actorId", actor.ID)
	return updated, nil
}

// HasApplied reports whether the actor already applied to the job. A nil
// application with nil error means no application exists.
func (u *applicationUsecase) HasApplied(ctx context.Context, actor domain.Actor, jobID int64) (*domain.Application, error) {
	if !policy.CanApply(actor) {
		return nil, apperror.Forbidden("Applicant access required")
	}

	app, err := u.applicationRepo.GetByJobAndApplicant(ctx, jobID, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
