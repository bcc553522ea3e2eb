package v1

import (
	"net/http"

	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}

	protected.GET("/auth/me", handler.Me)
}

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	UserType  string `json:"userType"`

	// Optional profile fields submitted during signup
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Experience     string `json:"experience"`
	CurrentRole    string `json:"currentRole"`
	ExpectedSalary string `json:"expectedSalary"`
	AvailableDate  string `json:"availableDate"`
	Portfolio      string `json:"portfolio"`
	Linkedin       string `json:"linkedin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user and returns a signed session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	input := domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.UserType,
		Profile: domain.ProfileBackfill{
			Phone:          req.Phone,
			Location:       req.Location,
			Experience:     req.Experience,
			CurrentRole:    req.CurrentRole,
			ExpectedSalary: req.ExpectedSalary,
			AvailableDate:  parseDate(req.AvailableDate),
			Portfolio:      req.Portfolio,
			Linkedin:       req.Linkedin,
		},
	}

	user, signed, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	user.UserType = user.Role
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   signed,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a signed session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and password are required"))
		return
	}

	user, signed, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	user.UserType = user.Role
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   signed,
	})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	actor := actorFromGin(c)

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
