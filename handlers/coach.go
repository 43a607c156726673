// File: handlers/coach.go
package handlers

import (
	"fmt"
	"net/http"

	"coachify/models"
	"coachify/services/availability"
	"coachify/services/notification"
	"coachify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CoachHandler exposes coach and slot management endpoints.
type CoachHandler struct {
	Service  availability.AvailabilityService
	Notifier notification.NotificationService
}

func NewCoachHandler(svc availability.AvailabilityService, notifier notification.NotificationService) *CoachHandler {
	return &CoachHandler{Service: svc, Notifier: notifier}
}

func (h *CoachHandler) CreateCoachHandler(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Name and description are required"))
		return
	}

	coach, err := h.Service.CreateCoach(c.Request.Context(), body.Name, body.Description)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	// Broadcast is best effort; a push failure never fails the create.
	title := fmt.Sprintf("%s is added as new coach", coach.Name)
	if _, err := h.Notifier.SendCustom(c.Request.Context(), title, coach.Description, ""); err != nil {
		utils.GetLogger().Warn("coach created notification failed", zap.Error(err))
	}

	utils.SendResponse(c, http.StatusCreated, "Coach created successfully", coach)
}

func (h *CoachHandler) UpdateCoachHandler(c *gin.Context) {
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Invalid request payload"))
		return
	}

	coach, err := h.Service.UpdateCoach(c.Request.Context(), c.Param("id"), body.Name, body.Description)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Coach updated successfully", coach)
}

func (h *CoachHandler) DeleteCoachHandler(c *gin.Context) {
	coach, err := h.Service.DeleteCoach(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Coach deleted successfully", coach)
}

func (h *CoachHandler) GetAllCoachesHandler(c *gin.Context) {
	coaches, err := h.Service.GetAllCoaches(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "All coaches retrieved successfully", coaches)
}

func (h *CoachHandler) GetCoachByIDHandler(c *gin.Context) {
	coach, err := h.Service.GetCoachByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Coach retrieved successfully", coach)
}

func (h *CoachHandler) AddDateHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Date is required"))
		return
	}

	coach, err := h.Service.AddDate(c.Request.Context(), c.Param("id"), body.Date)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Date added successfully", coach)
}

func (h *CoachHandler) UpdateSlotHandler(c *gin.Context) {
	var body struct {
		Date    string             `json:"date" binding:"required"`
		Updates models.SlotUpdates `json:"updates"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Date and slot updates are required"))
		return
	}

	coach, err := h.Service.UpdateSlot(c.Request.Context(), c.Param("id"), body.Date, body.Updates)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Slot updated successfully", coach)
}

func (h *CoachHandler) ToggleSlotFlagHandler(c *gin.Context) {
	var body struct {
		Date    string `json:"date" binding:"required"`
		SlotKey string `json:"slotKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Date and slotKey are required"))
		return
	}

	coach, err := h.Service.ToggleSlotFlag(c.Request.Context(), c.Param("id"), body.Date, body.SlotKey)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Slot flag toggled successfully", coach)
}

func (h *CoachHandler) DeleteSlotHandler(c *gin.Context) {
	var body struct {
		Date    string `json:"date" binding:"required"`
		SlotKey string `json:"slotKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Date and slotKey are required"))
		return
	}

	coach, err := h.Service.DeleteSlot(c.Request.Context(), c.Param("id"), body.Date, body.SlotKey)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Slot deleted successfully", coach)
}

func (h *CoachHandler) GetSlotsByDateHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.SendError(c, utils.NewValidation("Query parameter date is required"))
		return
	}

	slots, err := h.Service.GetSlotsByDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Slots retrieved successfully", slots)
}
