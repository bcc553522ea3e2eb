package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"talenthub-backend/internal/domain"
	"talenthub-backend/internal/usecase"
	"talenthub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	applicant = domain.Actor{ID: 10, Role: domain.RoleApplicant}
	employer  = domain.Actor{ID: 20, Role: domain.RoleEmployer}
	admin     = domain.Actor{ID: 30, Role: domain.RoleAdmin}
)

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestApplyGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid non-applicants", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo))

		_, err := uc.Apply(ctx, employer, domain.ApplyInput{JobID: 1, ResumePath: "resume.pdf"})
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("Should return not found for a missing job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, new(MockUserRepo))

		_, err := uc.Apply(ctx, applicant, domain.ApplyInput{JobID: 99, ResumePath: "resume.pdf"})
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should reject jobs that are not accepting applications", func(t *testing.T) {
		for _, status := range []string{domain.JobStatusInactive, domain.JobStatusDraft, domain.JobStatusFlagged, domain.JobStatusRejected} {
			jobRepo := new(MockJobRepo)
			jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, Status: status}, nil)
			uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, new(MockUserRepo))

			_, err := uc.Apply(ctx, applicant, domain.ApplyInput{JobID: 1, ResumePath: "resume.pdf"})
			assert.Error(t, err, status)
			assert.Contains(t, err.Error(), "not accepting applications", status)
		}
	})

	t.Run("Should return conflict when already applied", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobStatusActive}, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobAndApplicant", ctx, int64(1), applicant.ID).Return(&domain.Application{ID: 5}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo))

		_, err := uc.Apply(ctx, applicant, domain.ApplyInput{JobID: 1, ResumePath: "resume.pdf"})
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		assert.Contains(t, err.Error(), "You have already applied for this job")
	})

	t.Run("Should return conflict when the insert loses a concurrent race", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobStatusActive}, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobAndApplicant", ctx, int64(1), applicant.ID).Return(nil, domain.ErrNotFound)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo))

		_, err := uc.Apply(ctx, applicant, domain.ApplyInput{JobID: 1, ResumePath: "resume.pdf"})
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})

	t.Run("Should require a resume", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobStatusActive}, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobAndApplicant", ctx, int64(1), applicant.ID).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo))

		_, err := uc.Apply(ctx, applicant, domain.ApplyInput{JobID: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Resume is required")
	})

	t.Run("Should submit and backfill the profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, Status: domain.JobStatusActive, EmployerID: employer.ID}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobAndApplicant", ctx, int64(1), applicant.ID).Return(nil, domain.ErrNotFound)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			a.ID = 7
			assert.Equal(t, domain.ApplicationStatusApplied, a.Status)
		})
		appRepo.On("GetByID", ctx, int64(7)).Return(&domain.Application{
			ID: 7, JobID: 1, ApplicantID: applicant.ID, Status: domain.ApplicationStatusApplied,
			Job: &domain.Job{ID: 1, EmployerID: employer.ID},
		}, nil)

		userRepo := new(MockUserRepo)
		userRepo.On("Backfill", ctx, applicant.ID, mock.AnythingOfType("domain.ProfileBackfill")).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		app, err := uc.Apply(ctx, applicant, domain.ApplyInput{
			JobID:      1,
			ResumePath: "resume-abc.pdf",
			Backfill:   domain.ProfileBackfill{Phone: "+123456"},
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), app.ID)
		userRepo.AssertCalled(t, "Backfill", ctx, applicant.ID, mock.AnythingOfType("domain.ProfileBackfill"))
	})
}

func TestApplicationVisibility(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Application{
		ID: 7, JobID: 1, ApplicantID: applicant.ID,
		Job: &domain.Job{ID: 1, EmployerID: employer.ID},
	}

	newUC := func() domain.ApplicationUsecase {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(stored, nil)
		return usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))
	}

	t.Run("Applicant, job owner, and admin can view", func(t *testing.T) {
		for _, actor := range []domain.Actor{applicant, employer, admin} {
			_, err := newUC().GetApplication(ctx, actor, 7)
			assert.NoError(t, err, actor.Role)
		}
	})

	t.Run("Unrelated users cannot view", func(t *testing.T) {
		other := domain.Actor{ID: 99, Role: domain.RoleEmployer}
		_, err := newUC().GetApplication(ctx, other, 7)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Application{
		ID: 7, JobID: 1, ApplicantID: applicant.ID, Status: domain.ApplicationStatusApplied,
		Job: &domain.Job{ID: 1, EmployerID: employer.ID},
	}

	t.Run("Should reject invalid statuses", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo))

		_, err := uc.UpdateStatus(ctx, employer, 7, "PENDING")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")

		_, err = uc.UpdateStatus(ctx, employer, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Status is required")
	})

	t.Run("Job owner can decide, applicant cannot", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(stored, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusShortlisted).Return(&domain.Application{
			ID: 7, Status: domain.ApplicationStatusShortlisted,
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))

		updated, err := uc.UpdateStatus(ctx, employer, 7, "shortlisted")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusShortlisted, updated.Status)

		_, err = uc.UpdateStatus(ctx, applicant, 7, "shortlisted")
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("Admin can decide for any job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(stored, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusHired).Return(&domain.Application{
			ID: 7, Status: domain.ApplicationStatusHired,
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))

		updated, err := uc.UpdateStatus(ctx, admin, 7, "HIRED")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, updated.Status)
	})
}

func TestListMyApplications(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid non-applicants", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo))

		for _, actor := range []domain.Actor{employer, admin} {
			_, _, err := uc.ListMyApplications(ctx, actor, "", 1, 10)
			assert.Equal(t, http.StatusForbidden, appErrCode(t, err), actor.Role)
		}
	})

	t.Run("Should scope the listing to the applicant", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("Fetch", ctx, domain.ApplicationFilter{ApplicantID: applicant.ID}, 10, 0).
			Return([]domain.Application{{ID: 7, ApplicantID: applicant.ID}}, int64(1), nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))

		apps, pagination, err := uc.ListMyApplications(ctx, applicant, "", 1, 10)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
		assert.Equal(t, int64(1), pagination.TotalItems)
	})
}

func TestHasApplied(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid non-applicants", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo))

		for _, actor := range []domain.Actor{employer, admin} {
			_, err := uc.HasApplied(ctx, actor, 1)
			assert.Equal(t, http.StatusForbidden, appErrCode(t, err), actor.Role)
		}
	})

	t.Run("Should report no application without error", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByJobAndApplicant", ctx, int64(1), applicant.ID).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockUserRepo))

		app, err := uc.HasApplied(ctx, applicant, 1)
		assert.NoError(t, err)
		assert.Nil(t, app)
	})
}
