package v1

import (
	"net/http"
	"strconv"

	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/apperror"
	"talenthub-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	uploads       *upload.Store
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, uploads *upload.Store) {
	handler := &ApplicationHandler{applicationUC: applicationUC, uploads: uploads}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Submit)
		apps.GET("/my-applications", handler.ListMine)
		apps.GET("/job/:jobId", handler.ListForJob)
		apps.PATCH("/:id/status", handler.UpdateStatus)
		apps.GET("/check/:jobId", handler.Check)
		apps.GET("/:id", handler.GetDetails)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Submit godoc
// @Summary      Submit an application
// @Description  Multipart submit with a required resume and optional cover letter file
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId        formData  int     true   "Job ID"
// @Param        resume       formData  file    true   "Resume (.pdf, .doc, .docx)"
// @Param        coverLetterFile  formData  file  false  "Cover letter file"
// @Param        coverLetter  formData  string  false  "Cover letter text"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.PostForm("jobId"), 10, 64)
	if err != nil || jobID < 1 {
		c.Error(apperror.BadRequest("Job ID is required"))
		return
	}

	input := domain.ApplyInput{
		JobID:       jobID,
		CoverLetter: c.PostForm("coverLetter"),
		Backfill: domain.ProfileBackfill{
			Phone:          c.PostForm("phone"),
			Location:       c.PostForm("location"),
			Experience:     c.PostForm("experience"),
			CurrentRole:    c.PostForm("currentRole"),
			ExpectedSalary: c.PostForm("expectedSalary"),
			AvailableDate:  parseDate(c.PostForm("availableDate")),
			Portfolio:      c.PostForm("portfolio"),
			Linkedin:       c.PostForm("linkedin"),
		},
	}

	if fh, err := c.FormFile("resume"); err == nil {
		name, err := h.uploads.Save("resume", fh)
		if err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		input.ResumePath = name
	}
	if fh, err := c.FormFile("coverLetterFile"); err == nil {
		name, err := h.uploads.Save("coverLetterFile", fh)
		if err != nil {
			h.uploads.Remove(input.ResumePath)
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		input.CoverLetterPath = name
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), actorFromGin(c), input)
	if err != nil {
		// Stored files are orphans once the submit fails.
		h.uploads.Remove(input.ResumePath)
		h.uploads.Remove(input.CoverLetterPath)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// ListMine godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	page, limit := parsePaging(c)

	status := ""
	if st := c.Query("status"); st != "" && st != "all" {
		parsed, err := domain.ParseApplicationStatus(st)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid status"))
			return
		}
		status = parsed
	}

	apps, pagination, err := h.applicationUC.ListMyApplications(c.Request.Context(), actorFromGin(c), status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"pagination":   paginationJSON(pagination, "totalApplications"),
	})
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Job owner or admin only
// @Tags         applications
// @Produce      json
// @Param        jobId   path   int     true   "Job ID"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	page, limit := parsePaging(c)

	status := ""
	if st := c.Query("status"); st != "" && st != "all" {
		parsed, err := domain.ParseApplicationStatus(st)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid status"))
			return
		}
		status = parsed
	}

	apps, pagination, err := h.applicationUC.ListForJob(c.Request.Context(), actorFromGin(c), jobID, status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"pagination":   paginationJSON(pagination, "totalApplications"),
	})
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Job owner or admin moves the application through the pipeline
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("Application not found"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), actorFromGin(c), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated successfully",
		"application": app,
	})
}

// Check godoc
// @Summary      Check whether the caller applied to a job
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  map[string]interface{}
// @Router       /applications/check/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Check(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	app, err := h.applicationUC.HasApplied(c.Request.Context(), actorFromGin(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasApplied":  app != nil,
		"application": app,
	})
}

// GetDetails godoc
// @Summary      Get an application
// @Description  Visible to the applicant, the job's employer, and admins
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Error(apperror.NotFound("Application not found"))
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), actorFromGin(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": app})
}
