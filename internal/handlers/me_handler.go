package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/heritagecuts/barbershop-api/internal/middleware"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if actor.UserID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, actor.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profileJSON(&profile)})
}

type UpdateMeRequest struct {
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	PreferredStyles *string `json:"preferred_styles"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if actor.UserID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, actor.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.PreferredStyles != nil {
		profile.PreferredStyles = *req.PreferredStyles
	}

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profileJSON(&profile)})
}
