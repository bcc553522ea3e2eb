package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/apperror"
	"talenthub-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the hash strength used for all stored passwords.
const bcryptCost = 12

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens, validate: validate}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, "", apperror.BadRequest("Missing required fields")
	}
	if len(input.Password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters long")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  string(hash),
		Role:      domain.ParseRole(input.Role),
	}
	applyBackfill(user, input.Profile)

	// The unique index on email decides the race; no pre-check read.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("User with this email already exists")
		}
		return nil, "", apperror.Internal(err)
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	slog.Info("user registered", "userId", user.ID, "role", user.Role)
	return user, signed, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Email and password are required")
	}

	// Both unknown email and wrong password return the same message so the
	// endpoint does not reveal which accounts exist.
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	slog.Info("user logged in", "userId", user.ID)
	return user, signed, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// applyBackfill copies registration-time profile fields onto the new user.
func applyBackfill(user *domain.User, p domain.ProfileBackfill) {
	set := func(dst **string, v string) {
		if v != "" {
			s := v
			*dst = &s
		}
	}
	set(&user.Phone, p.Phone)
	set(&user.Location, p.Location)
	set(&user.Experience, p.Experience)
	set(&user.CurrentRole, p.CurrentRole)
	set(&user.ExpectedSalary, p.ExpectedSalary)
	set(&user.Portfolio, p.Portfolio)
	set(&user.Linkedin, p.Linkedin)
	if p.AvailableDate != nil {
		d := *p.AvailableDate
		user.AvailableDate = &d
	}
}
