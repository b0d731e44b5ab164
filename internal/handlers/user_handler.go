package handlers

import (
	"net/http"

	"contrata_backend/internal/middleware"
	"contrata_backend/internal/services"
	"contrata_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.PATCH("/profile", h.UpdateProfile)
		users.POST("/upgrade", h.UpgradeToPremium)
		users.POST("/highlight", h.PurchaseHighlight)
		users.GET("/stats", h.GetStats)
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpgradeToPremium(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.UpgradeToPremium(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) PurchaseHighlight(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.PurchaseHighlightRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.userService.PurchaseHighlight(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Highlight activated for 7 days"})
}

func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	stats, err := h.userService.GetStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
