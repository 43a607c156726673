// File: handlers/booking.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"coachify/models"
	"coachify/services/booking"
	"coachify/services/notification"
	"coachify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking request and approval endpoints.
type BookingHandler struct {
	Service  booking.BookingService
	Notifier notification.NotificationService
}

func NewBookingHandler(svc booking.BookingService, notifier notification.NotificationService) *BookingHandler {
	return &BookingHandler{Service: svc, Notifier: notifier}
}

func (h *BookingHandler) CreateRequestHandler(c *gin.Context) {
	var body struct {
		Name  string   `json:"name" binding:"required"`
		Email string   `json:"email" binding:"required,email"`
		Date  string   `json:"date" binding:"required"`
		Time  []string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Name, email, date and time ranges are required"))
		return
	}

	req, err := h.Service.Create(c.Request.Context(), body.Name, body.Email, body.Date, body.Time)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusCreated, "User created successfully", req)
}

func (h *BookingHandler) GetAllRequestsHandler(c *gin.Context) {
	reqs, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Coaching users fetched successfully", reqs)
}

func (h *BookingHandler) SearchRequestsHandler(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		utils.SendError(c, utils.NewValidation("Search term (q) is required"))
		return
	}

	reqs, err := h.Service.Search(c.Request.Context(), term)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Users fetched successfully", reqs)
}

func (h *BookingHandler) GetRequestByIDHandler(c *gin.Context) {
	req, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "User fetched successfully", req)
}

func (h *BookingHandler) UpdateRequestHandler(c *gin.Context) {
	var updates models.BookingUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.SendError(c, utils.NewValidation("Invalid request payload"))
		return
	}

	req, err := h.Service.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "User updated successfully", req)
}

func (h *BookingHandler) DeleteRequestHandler(c *gin.Context) {
	req, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "User deleted successfully", req)
}

// UpdateSlotStatusHandler applies an approve/deny action and notifies
// registered devices about the outcome.
func (h *BookingHandler) UpdateSlotStatusHandler(c *gin.Context) {
	var body struct {
		Range  string `json:"range" binding:"required"`
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, utils.NewValidation("Range and action are required"))
		return
	}

	req, err := h.Service.UpdateSlotStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), body.Range, body.Action)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	title := fmt.Sprintf("%s is %s", req.Name, req.Status)
	description := fmt.Sprintf("The User is %s by admin!", req.Status)
	if _, err := h.Notifier.SendCustom(c.Request.Context(), title, description, ""); err != nil {
		utils.GetLogger().Warn("status change notification failed", zap.Error(err))
	}

	utils.SendResponse(c, http.StatusOK, fmt.Sprintf("Slot %s successfully", strings.ToLower(req.Status)), req)
}

func (h *BookingHandler) TotalRequestsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, fmt.Sprintf("Total users are %d", stats.TotalUsers), stats.TotalUsers)
}

func (h *BookingHandler) TotalApprovedHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, fmt.Sprintf("Total users are %d", stats.TotalApproved), stats.TotalApproved)
}

func (h *BookingHandler) TotalDeniedHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, fmt.Sprintf("Total users are %d", stats.TotalDenied), stats.TotalDenied)
}
