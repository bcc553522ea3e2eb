package v1

import (
	"net/http"
	"strings"

	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browse routes stay public; the listing only serves ACTIVE jobs unless
	// a caller asks for another status explicitly.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.GET("/employer/my-jobs", handler.ListMyJobs)
	}
}

type CreateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Salary       string `json:"salary"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
	Remote       bool   `json:"remote"`
}

type UpdateJobRequest struct {
	Title        *string `json:"title"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	Type         *string `json:"type"`
	Salary       *string `json:"salary"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Benefits     *string `json:"benefits"`
	Remote       *bool   `json:"remote"`
	Status       *string `json:"status"`
}

// List godoc
// @Summary      List jobs
// @Description  Paged public job listing with search and filters
// @Tags         jobs
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Param        search    query  string  false  "Search title, company, description"
// @Param        type      query  string  false  "Employment type"
// @Param        location  query  string  false  "remote, onsite, or a location substring"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, limit := parsePaging(c)

	filter := domain.JobFilter{Search: c.Query("search")}

	if t := c.Query("type"); t != "" && t != "all" {
		parsed, err := domain.ParseJobType(t)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job type"))
			return
		}
		filter.Type = parsed
	}
	if loc := c.Query("location"); loc != "" && loc != "all" {
		filter.Location = strings.ToLower(loc)
	}
	if st := c.Query("status"); st != "" {
		parsed, err := domain.ParseJobStatus(st)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job status"))
			return
		}
		filter.Status = parsed
	}

	jobs, pagination, err := h.jobUC.ListJobs(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":       jobs,
		"pagination": paginationJSON(pagination, "totalJobs"),
	})
}

// GetDetails godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	jobType, err := domain.ParseJobType(req.Type)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job type"))
		return
	}

	job := &domain.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         jobType,
		Salary:       strPtr(req.Salary),
		Description:  req.Description,
		Requirements: strPtr(req.Requirements),
		Benefits:     strPtr(req.Benefits),
		Remote:       req.Remote,
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), actorFromGin(c), job)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     created,
	})
}

// Update godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      UpdateJobRequest  true  "Fields to update"
// @Success      200   {object}  map[string]interface{}
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := domain.JobUpdate{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Remote:       req.Remote,
	}
	if req.Type != nil {
		parsed, err := domain.ParseJobType(*req.Type)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job type"))
			return
		}
		upd.Type = &parsed
	}
	if req.Status != nil {
		parsed, err := domain.ParseJobStatus(*req.Status)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job status"))
			return
		}
		upd.Status = &parsed
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), actorFromGin(c), id, upd)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), actorFromGin(c), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListMyJobs godoc
// @Summary      List own postings
// @Description  Employer's jobs across all statuses
// @Tags         jobs
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Router       /jobs/employer/my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	page, limit := parsePaging(c)

	status := ""
	if st := c.Query("status"); st != "" && st != "all" {
		parsed, err := domain.ParseJobStatus(st)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job status"))
			return
		}
		status = parsed
	}

	jobs, pagination, err := h.jobUC.ListMyJobs(c.Request.Context(), actorFromGin(c), status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":       jobs,
		"pagination": paginationJSON(pagination, "totalJobs"),
	})
}
