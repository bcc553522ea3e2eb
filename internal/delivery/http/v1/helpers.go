package v1

import (
	"strconv"
	"time"

	"talenthub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// actorFromGin reads the authenticated caller set by the auth middleware.
func actorFromGin(c *gin.Context) domain.Actor {
	id, _ := c.Get(string(domain.KeyUserID))
	userID, _ := id.(int64)
	return domain.Actor{
		ID:    userID,
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  c.GetString(string(domain.KeyUserRole)),
	}
}

// parsePaging reads page/limit query params with the listing defaults.
func parsePaging(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// paginationJSON projects pagination metadata with the resource-specific
// total key ("totalJobs", "totalApplications", "totalUsers").
func paginationJSON(p domain.Pagination, totalKey string) gin.H {
	return gin.H{
		"currentPage": p.CurrentPage,
		"totalPages":  p.TotalPages,
		totalKey:      p.TotalItems,
		"hasNext":     p.HasNext,
		"hasPrev":     p.HasPrev,
	}
}

// parseDate accepts the date formats the frontend sends for availableDate.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// strPtr converts an empty string to a nil pointer.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
