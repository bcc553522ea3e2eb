// Package policy centralizes the platform's authorization rules as pure
// functions over domain types. Every mutating usecase consults these
// predicates instead of repeating role/ownership conditionals per route.
package policy

import "talenthub-backend/internal/domain"

// CanPostJobs reports whether the actor may create job postings.
func CanPostJobs(actor domain.Actor) bool {
	return actor.Role == domain.RoleEmployer
}

// CanManageJob reports whether the actor may update or delete the job, or
// review its applications: the owning employer or an admin.
func CanManageJob(actor domain.Actor, job *domain.Job) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.ID == job.EmployerID
}

// CanApply reports whether the actor may submit job applications.
func CanApply(actor domain.Actor) bool {
	return actor.Role == domain.RoleApplicant
}

// CanViewApplication reports whether the actor may read the application:
// the applicant themselves, the employer owning the job, or an admin.
func CanViewApplication(actor domain.Actor, app *domain.Application, job *domain.Job) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	if actor.ID == app.ApplicantID {
		return true
	}
	return job != nil && actor.ID == job.EmployerID
}

// CanDecideApplication reports whether the actor may change the
// application's status: the job's owning employer or an admin.
func CanDecideApplication(actor domain.Actor, job *domain.Job) bool {
	return CanManageJob(actor, job)
}

// IsAdmin reports whether the actor holds platform-wide management rights.
func IsAdmin(actor domain.Actor) bool {
	return actor.Role == domain.RoleAdmin
}

// CanAdministerUser reports whether the actor may delete or role-change the
// target user. Admin only, and never against their own account: self-delete
// and self-role-change are forbidden regardless of role.
func CanAdministerUser(actor domain.Actor, targetID int64) bool {
	return actor.Role == domain.RoleAdmin && actor.ID != targetID
}
