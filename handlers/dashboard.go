// File: handlers/dashboard.go
package handlers

import (
	"net/http"

	"coachify/services/booking"
	"coachify/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin aggregate counts.
type DashboardHandler struct {
	Booking booking.BookingService
}

func NewDashboardHandler(bookingSvc booking.BookingService) *DashboardHandler {
	return &DashboardHandler{Booking: bookingSvc}
}

func (h *DashboardHandler) CoachingStatsHandler(c *gin.Context) {
	stats, err := h.Booking.Stats(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}
	utils.SendResponse(c, http.StatusOK, "Dashboard stats fetched successfully", stats)
}
