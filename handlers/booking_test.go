package handlers

import (
	"context"
	"net/http"
	"testing"

	"coachify/models"
	"coachify/utils"

	"github.com/gin-gonic/gin"
)

// stubBooking returns one canned request or one canned error.
type stubBooking struct {
	req   *models.BookingRequest
	stats *models.CoachingStats
	err   error
}

func (s *stubBooking) Create(ctx context.Context, name, email, date string, ranges []string) (*models.BookingRequest, error) {
	return s.req, s.err
}
func (s *stubBooking) GetAll(ctx context.Context) ([]models.BookingRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.BookingRequest{*s.req}, nil
}
func (s *stubBooking) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	return s.req, s.err
}
func (s *stubBooking) Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error) {
	return s.req, s.err
}
func (s *stubBooking) Delete(ctx context.Context, id string) (*models.BookingRequest, error) {
	return s.req, s.err
}
func (s *stubBooking) UpdateSlotStatus(ctx context.Context, id, rangeLabel, action string) (*models.BookingRequest, error) {
	return s.req, s.err
}
func (s *stubBooking) Search(ctx context.Context, term string) ([]models.BookingRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.BookingRequest{*s.req}, nil
}
func (s *stubBooking) Stats(ctx context.Context) (*models.CoachingStats, error) {
	return s.stats, s.err
}

func newBookingRouter(svc *stubBooking, notifier *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, notifier)
	r.POST("/user", h.CreateRequestHandler)
	r.PUT("/status/:id", h.UpdateSlotStatusHandler)
	r.GET("/search", h.SearchRequestsHandler)
	r.GET("/total-users", h.TotalRequestsHandler)
	return r
}

func TestCreateRequestHandler(t *testing.T) {
	svc := &stubBooking{req: &models.BookingRequest{ID: "r1", Name: "Amit", Status: models.StatusPending}}
	r := newBookingRouter(svc, &stubNotifier{})

	w, envelope := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name":  "Amit",
		"email": "a@x.com",
		"date":  "2025-02-01",
		"time":  []string{"9am-10am"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !envelope.Success {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestCreateRequestHandlerDuplicateEmail(t *testing.T) {
	svc := &stubBooking{err: utils.NewConflict("A booking request with this email already exists")}
	r := newBookingRouter(svc, &stubNotifier{})

	w, _ := doJSON(t, r, http.MethodPost, "/user", gin.H{
		"name":  "Amit",
		"email": "a@x.com",
		"date":  "2025-02-01",
		"time":  []string{"9am-10am"},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestUpdateSlotStatusHandlerNotifies(t *testing.T) {
	svc := &stubBooking{req: &models.BookingRequest{
		ID: "r1", Name: "Amit", Status: models.StatusApproved,
		Time: []models.TimeRange{{Range: "9am-10am", Flag: true}},
	}}
	notifier := &stubNotifier{}
	r := newBookingRouter(svc, notifier)

	w, envelope := doJSON(t, r, http.MethodPut, "/status/r1", gin.H{"range": "9am-10am", "action": "APPROVED"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope.Message != "Slot approved successfully" {
		t.Fatalf("unexpected message: %q", envelope.Message)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "Amit is APPROVED" {
		t.Fatalf("unexpected notifications: %+v", notifier.sent)
	}
}

func TestUpdateSlotStatusHandlerNotFound(t *testing.T) {
	svc := &stubBooking{err: utils.NewNotFound("Booking request not found")}
	r := newBookingRouter(svc, &stubNotifier{})

	w, _ := doJSON(t, r, http.MethodPut, "/status/missing", gin.H{"range": "9am-10am", "action": "APPROVED"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSearchRequiresTerm(t *testing.T) {
	r := newBookingRouter(&stubBooking{}, &stubNotifier{})

	w, _ := doJSON(t, r, http.MethodGet, "/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without q, got %d", w.Code)
	}
}

func TestTotalRequestsHandler(t *testing.T) {
	svc := &stubBooking{stats: &models.CoachingStats{TotalUsers: 7, TotalApproved: 2, TotalDenied: 1}}
	r := newBookingRouter(svc, &stubNotifier{})

	w, envelope := doJSON(t, r, http.MethodGet, "/total-users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if envelope.Message != "Total users are 7" {
		t.Fatalf("unexpected message: %q", envelope.Message)
	}
}
