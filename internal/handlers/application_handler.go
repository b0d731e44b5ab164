package handlers

import (
	"net/http"

	"contrata_backend/internal/middleware"
	"contrata_backend/internal/models"
	"contrata_backend/internal/services"
	"contrata_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	freelancer := r.Group("/applications")
	freelancer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleFreelancer))
	{
		freelancer.POST("", h.CreateApplication)
		freelancer.GET("/my", h.GetMyApplications)
	}

	contratante := r.Group("/applications")
	contratante.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleContratante))
	{
		contratante.GET("/job/:jobId", h.GetApplicationsByJob)
		contratante.PATCH("/:applicationId/status", h.UpdateApplicationStatus)
	}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.FreelancerID = userID

	application, err := h.applicationService.CreateApplication(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetApplicationsByFreelancer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications, "total": len(applications)})
}

func (h *ApplicationHandler) GetApplicationsByJob(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetApplicationsByJob(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications, "total": len(applications)})
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateApplicationStatus(c.Param("applicationId"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
