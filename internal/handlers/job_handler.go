package handlers

import (
	"net/http"

	"contrata_backend/internal/middleware"
	"contrata_backend/internal/models"
	"contrata_backend/internal/services"
	"contrata_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("", h.GetJobs)
		public.GET("/:jobId", h.GetJob)
	}

	// Posting and managing jobs is contratante-only; ownership of the
	// specific job is checked in the service.
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleContratante))
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("/my/jobs", h.GetMyJobs)
		jobs.PATCH("/:jobId", h.UpdateJob)
		jobs.DELETE("/:jobId", h.DeleteJob)
	}
}

func (h *JobHandler) GetJobs(c *gin.Context) {
	var filter dto.JobFilterRequest
	if !h.BindQuery(c, &filter) {
		return
	}

	jobs, err := h.jobService.GetJobs(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJobByID(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.ClientID = userID

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetJobsByClient(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
