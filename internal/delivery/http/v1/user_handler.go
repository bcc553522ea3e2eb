package v1

import (
	"net/http"
	"strings"

	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/profile", handler.GetProfile)
		users.PUT("/profile", handler.UpdateProfile)
		users.PUT("/change-password", handler.ChangePassword)

		// Admin panel. The usecase enforces the admin role; these routes
		// only need authentication.
		users.GET("", handler.List)
		users.GET("/stats/overview", handler.Stats)
		users.GET("/:id", handler.GetByID)
		users.PATCH("/:id/role", handler.SetRole)
		users.DELETE("/:id", handler.Delete)
	}
}

type UpdateProfileRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Phone          *string `json:"phone"`
	Location       *string `json:"location"`
	Experience     *string `json:"experience"`
	CurrentRole    *string `json:"currentRole"`
	ExpectedSalary *string `json:"expectedSalary"`
	AvailableDate  *string `json:"availableDate"`
	Portfolio      *string `json:"portfolio"`
	Linkedin       *string `json:"linkedin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c.Request.Context(), actorFromGin(c).ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary      Replace own profile
// @Description  PUT semantics: omitted optional fields clear the stored value
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("First name and last name are required"))
		return
	}

	upd := domain.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Location:       req.Location,
		Experience:     req.Experience,
		CurrentRole:    req.CurrentRole,
		ExpectedSalary: req.ExpectedSalary,
		Portfolio:      req.Portfolio,
		Linkedin:       req.Linkedin,
	}
	if req.AvailableDate != nil {
		upd.AvailableDate = parseDate(*req.AvailableDate)
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), actorFromGin(c).ID, upd)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      ChangePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Router       /users/change-password [put]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Current password and new password are required"))
		return
	}

	if err := h.userUC.ChangePassword(c.Request.Context(), actorFromGin(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// List godoc
// @Summary      List users
// @Description  Admin only
// @Tags         users
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        role    query  string  false  "Role filter"
// @Param        search  query  string  false  "Search name and email"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	page, limit := parsePaging(c)

	filter := domain.UserFilter{Search: c.Query("search")}
	if role := c.Query("role"); role != "" && role != "all" {
		normalized := strings.ToUpper(role)
		if !domain.ValidRole(normalized) {
			c.Error(apperror.BadRequest("Invalid role"))
			return
		}
		filter.Role = normalized
	}

	result, err := h.userUC.ListUsers(c.Request.Context(), actorFromGin(c), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if result.Users == nil {
		result.Users = []domain.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      result.Users,
		"pagination": paginationJSON(result.Pagination, "totalUsers"),
	})
}

// GetByID godoc
// @Summary      Get a user
// @Description  Admin only
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("User not found"))
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), actorFromGin(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SetRole godoc
// @Summary      Change a user's role
// @Description  Admin only; admins cannot change their own role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "User ID"
// @Param        body  body      SetRoleRequest  true  "New role"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /users/{id}/role [patch]
// @Security     BearerAuth
func (h *UserHandler) SetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("User not found"))
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Role is required"))
		return
	}

	user, err := h.userUC.SetRole(c.Request.Context(), actorFromGin(c), id, strings.ToUpper(req.Role))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user":    user,
	})
}

// Delete godoc
// @Summary      Delete a user
// @Description  Admin only; admins cannot delete their own account
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("User not found"))
		return
	}

	if err := h.userUC.DeleteUser(c.Request.Context(), actorFromGin(c), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// Stats godoc
// @Summary      Platform statistics
// @Description  Admin only overview counts
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Router       /users/stats/overview [get]
// @Security     BearerAuth
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.userUC.GetStats(c.Request.Context(), actorFromGin(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
