// File: handlers/notification.go
package handlers

import (
	"net/http"

	"coachify/services/notification"
	"coachify/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes device registration and history endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

func (h *NotificationHandler) RegisterTokenHandler(c *gin.Context) {
	var body struct {
		UserID   string `json:"userId" binding:"required"`
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("UserId, username, email and fcmToken are required"))
		return
	}

	device, err := h.Service.RegisterDevice(c.Request.Context(), body.UserID, body.Username, body.Email, body.FCMToken)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Device token registered", device)
}

func (h *NotificationHandler) SendHandler(c *gin.Context) {
	var body struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		ContentURL  string `json:"contentUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Title and description are required"))
		return
	}

	result, err := h.Service.SendCustom(c.Request.Context(), body.Title, body.Description, body.ContentURL)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	if result.Devices == 0 {
		utils.SendResponse(c, http.StatusOK, "No devices registered", result)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Notification sent", result)
}

func (h *NotificationHandler) GetForUserHandler(c *gin.Context) {
	records, err := h.Service.GetForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Notifications fetched successfully", records)
}

func (h *NotificationHandler) GetUnreadHandler(c *gin.Context) {
	records, err := h.Service.GetUnreadForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Unread notifications fetched successfully", records)
}

func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	rec, err := h.Service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Notification marked as read", rec)
}

func (h *NotificationHandler) AdminListHandler(c *gin.Context) {
	records, err := h.Service.GetAllForAdmin(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Notifications fetched successfully", records)
}
