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

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs serves the public listing. An empty status filter defaults to
// ACTIVE so unlisted moderation states never leak into browse results.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, domain.Pagination, error) {
	if filter.Status == "" {
		filter.Status = domain.JobStatusActive
	}

	page, pageSize = domain.ClampPage(page, pageSize)
	jobs, total, err := u.jobRepo.Fetch(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}

	now := time.Now()
	for i := range jobs {
		jobs[i].PostedDate = domain.FormatPostedDate(jobs[i].CreatedAt, now)
	}

	return jobs, domain.NewPagination(page, pageSize, total), nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	job.PostedDate = domain.FormatPostedDate(job.CreatedAt, time.Now())
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, job *domain.Job) (*domain.Job, error) {
	if !policy.CanPostJobs(actor) {
		return nil, apperror.Forbidden("Employer access required")
	}
	if job.Title == "" || job.Company == "" || job.Location == "" || job.Type == "" || job.Description == "" {
		return nil, apperror.BadRequest("Missing required fields")
	}

	job.EmployerID = actor.ID
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}

	slog.Info("job created", "jobId", job.ID, "employerId", actor.ID)

	// Re-read for the employer projection and counts.
	return u.GetJob(ctx, job.ID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.Actor, id int64, upd domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !policy.CanManageJob(actor, job) {
		return nil, apperror.Forbidden("Not authorized to update this job")
	}

	if upd.Title != nil {
		job.Title = *upd.Title
	}
	if upd.Company != nil {
		job.Company = *upd.Company
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.Type != nil {
		job.Type = *upd.Type
	}
	if upd.Salary != nil {
		job.Salary = upd.Salary
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Requirements != nil {
		job.Requirements = upd.Requirements
	}
	if upd.Benefits != nil {
		job.Benefits = upd.Benefits
	}
	if upd.Remote != nil {
		job.Remote = *upd.Remote
	}
	if upd.Status != nil {
		job.Status = *upd.Status
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	slog.Info("job updated", "jobId", id, "actorId", actor.ID)
	job.PostedDate = domain.FormatPostedDate(job.CreatedAt, time.Now())
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.Actor, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if !policy.CanManageJob(actor, job) {
		return apperror.Forbidden("Not authorized to delete this job")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	slog.Info("job deleted", "jobId", id, "actorId", actor.ID)
	return nil
}

// ListMyJobs lists the employer's own postings across all statuses, unless
// a status filter narrows it.
func (u *jobUsecase) ListMyJobs(ctx context.Context, actor domain.Actor, status string, page, pageSize int) ([]domain.Job, domain.Pagination, error) {
	if !policy.CanPostJobs(actor) {
		return nil, domain.Pagination{}, apperror.Forbidden("Employer access required")
	}

	filter := domain.JobFilter{EmployerID: actor.ID, Status: status}
	page, pageSize = domain.ClampPage(page, pageSize)
	jobs, total, err := u.jobRepo.Fetch(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal(err)
	}

	now := time.Now()
	for i := range jobs {
		jobs[i].PostedDate = domain.FormatPostedDate(jobs[i].CreatedAt, now)
	}

	return jobs, domain.NewPagination(page, pageSize, total), nil
}
