package usecase

import (
	"context"
	"errors"
	"log/slog"

	"talenthub-backend/internal/domain"
	"talenthub-backend/internal/policy"
	"talenthub-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd.FirstName == "" || upd.LastName == "" {
		return nil, apperror.BadRequest("First name and last name are required")
	}

	user, err := u.userRepo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperror.BadRequest("Current password and new password are required")
	}
	if len(newPassword) < 6 {
		return apperror.BadRequest("New password must be at least 6 characters long")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperror.BadRequest("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return apperror.Internal(err)
	}

	slog.Info("password changed", "userId", userID)
	return nil
}

func (u *userUsecase) ListUsers(ctx context.Context, actor domain.Actor, filter domain.UserFilter, page, pageSize int) (*domain.PaginatedUsers, error) {
	if !policy.IsAdmin(actor) {
		return nil, apperror.Forbidden("Admin access required")
	}

	page, pageSize = domain.ClampPage(page, pageSize)
	users, total, err := u.userRepo.Fetch(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.PaginatedUsers{
		Users:      users,
		Pagination: domain.NewPagination(page, pageSize, total),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	if !policy.IsAdmin(actor) {
		return nil, apperror.Forbidden("Admin access required")
	}

	user, err := u.userRepo.GetByIDWithCounts(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) SetRole(ctx context.Context, actor domain.Actor, id int64, role string) (*domain.User, error) {
	if !policy.IsAdmin(actor) {
		return nil, apperror.Forbidden("Admin access required")
	}
	if role == "" {
		return nil, apperror.BadRequest("Role is required")
	}
	if !domain.ValidRole(role) {
		return nil, apperror.BadRequest("Invalid role")
	}
	// Admins may not change their own role, even to the same value.
	if !policy.CanAdministerUser(actor, id) {
		return nil, apperror.BadRequest("Cannot change your own role")
	}

	user, err := u.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	slog.Info("user role updated", "userId", id, "role", role, "adminId", actor.ID)
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, actor domain.Actor, id int64) error {
	if !policy.IsAdmin(actor) {
		return apperror.Forbidden("Admin access required")
	}
	if !policy.CanAdministerUser(actor, id) {
		return apperror.BadRequest("Cannot delete your own account")
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	slog.Info("user deleted", "userId", id, "adminId", actor.ID)
	return nil
}

func (u *userUsecase) GetStats(ctx context.Context, actor domain.Actor) (*domain.UserStats, error) {
	if !policy.IsAdmin(actor) {
		return nil, apperror.Forbidden("Admin access required")
	}

	stats, err := u.userRepo.Stats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
