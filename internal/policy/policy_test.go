package policy_test

import (
	"testing"

	"talenthub-backend/internal/domain"
	"talenthub-backend/internal/policy"

	"github.com/stretchr/testify/assert"
)

var (
	applicant = domain.Actor{ID: 10, Role: domain.RoleApplicant}
	employer  = domain.Actor{ID: 20, Role: domain.RoleEmployer}
	admin     = domain.Actor{ID: 30, Role: domain.RoleAdmin}
)

func TestJobPolicies(t *testing.T) {
	job := &domain.Job{ID: 1, EmployerID: employer.ID}

	assert.True(t, policy.CanPostJobs(employer))
	assert.False(t, policy.CanPostJobs(applicant))
	assert.False(t, policy.CanPostJobs(admin))

	assert.True(t, policy.CanManageJob(employer, job))
	assert.True(t, policy.CanManageJob(admin, job))
	assert.False(t, policy.CanManageJob(applicant, job))
	assert.False(t, policy.CanManageJob(domain.Actor{ID: 99, Role: domain.RoleEmployer}, job))
}

func TestApplicationPolicies(t *testing.T) {
	job := &domain.Job{ID: 1, EmployerID: employer.ID}
	app := &domain.Application{ID: 7, JobID: 1, ApplicantID: applicant.ID}

	assert.True(t, policy.CanApply(applicant))
	assert.False(t, policy.CanApply(employer))

	assert.True(t, policy.CanViewApplication(applicant, app, job))
	assert.True(t, policy.CanViewApplication(employer, app, job))
	assert.True(t, policy.CanViewApplication(admin, app, job))
	assert.False(t, policy.CanViewApplication(domain.Actor{ID: 99, Role: domain.RoleApplicant}, app, job))
	// A nil job blocks ownership checks but not the applicant or admin
	assert.True(t, policy.CanViewApplication(applicant, app, nil))
	assert.False(t, policy.CanViewApplication(employer, app, nil))

	assert.True(t, policy.CanDecideApplication(employer, job))
	assert.True(t, policy.CanDecideApplication(admin, job))
	assert.False(t, policy.CanDecideApplication(applicant, job))
}

func TestUserAdministration(t *testing.T) {
	assert.True(t, policy.IsAdmin(admin))
	assert.False(t, policy.IsAdmin(employer))

	assert.True(t, policy.CanAdministerUser(admin, applicant.ID))
	// Never against their own account
	assert.False(t, policy.CanAdministerUser(admin, admin.ID))
	assert.False(t, policy.CanAdministerUser(employer, applicant.ID))
}
