// File: handlers/bundle.go
package handlers

// HandlerBundle groups the handlers the route registration wires up.
type HandlerBundle struct {
	Coach        *CoachHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}
