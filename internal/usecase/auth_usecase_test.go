package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"talenthub-backend/internal/domain"
	"talenthub-backend/internal/usecase"
	"talenthub-backend/pkg/apperror"
	"talenthub-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(userRepo *MockUserRepo) domain.AuthUsecase {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUsecase(userRepo, tokens, validator.New())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create user and return a token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 42
		})

		user, signed, err := uc.Register(ctx, domain.RegisterInput{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "Jane@Example.com",
			Password:  "secret123",
			Role:      "applicant",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, domain.RoleApplicant, user.Role)
		// Email normalized, password stored as a hash
		assert.Equal(t, "jane@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	})

	t.Run("Should reject missing fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		_, _, err := uc.Register(ctx, domain.RegisterInput{Email: "a@b.com"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Missing required fields")
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "12345",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("Should return conflict for duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)

		_, _, err := uc.Register(ctx, domain.RegisterInput{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret123",
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Equal(t, "User with this email already exists", appErr.Message)
	})

	t.Run("Should default unknown role to applicant", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, err := uc.Register(ctx, domain.RegisterInput{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret123", Role: "superuser",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleApplicant, user.Role)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)

	t.Run("Should log in with valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{
			ID: 1, Email: "jane@example.com", Password: string(hash), Role: domain.RoleApplicant,
		}, nil)

		user, signed, err := uc.Login(ctx, "jane@example.com", "correct-password")
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Should return the same error for unknown email and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{
			ID: 1, Email: "jane@example.com", Password: string(hash),
		}, nil)

		_, _, errUnknown := uc.Login(ctx, "nobody@example.com", "whatever")
		_, _, errWrongPass := uc.Login(ctx, "jane@example.com", "wrong-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Contains(t, errUnknown.Error(), "Invalid email or password")
	})

	t.Run("Should reject empty credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := newAuthUC(mockRepo)

		_, _, err := uc.Login(ctx, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email and password are required")
	})
}
