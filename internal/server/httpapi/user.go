package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/server/models"
)

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *Handlers) updateFCMToken(c *gin.Context) {
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := claimsFrom(c)
	if err := h.users.UpdateFCMToken(c.Request.Context(), claims.UserID, req.Token); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) getNotificationSettings(c *gin.Context) {
	claims := claimsFrom(c)
	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.NotificationSettings)
}

func (h *Handlers) updateNotificationSettings(c *gin.Context) {
	var req models.NotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims := claimsFrom(c)
	if err := h.users.UpdateNotificationSettings(c.Request.Context(), claims.UserID, req); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
