package booking

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"coachify/models"
	"coachify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeBookingRepo keeps requests in memory with the same error surface
// as the Mongo repository.
type fakeBookingRepo struct {
	nextID   int
	requests map[string]*models.BookingRequest
	byEmail  map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		requests: make(map[string]*models.BookingRequest),
		byEmail:  make(map[string]string),
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, req *models.BookingRequest) error {
	if _, ok := f.byEmail[req.Email]; ok {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	f.nextID++
	req.ID = fmt.Sprintf("req-%d", f.nextID)
	f.requests[req.ID] = req
	f.byEmail[req.Email] = req.ID
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return req, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, updates models.BookingUpdate) (*models.BookingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if updates.Name != nil {
		req.Name = *updates.Name
	}
	if updates.Email != nil {
		delete(f.byEmail, req.Email)
		req.Email = *updates.Email
		f.byEmail[req.Email] = id
	}
	if updates.Date != nil {
		req.Date = *updates.Date
	}
	if updates.Time != nil {
		req.Time = updates.Time
	}
	return req, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) (*models.BookingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.requests, id)
	delete(f.byEmail, req.Email)
	return req, nil
}

func (f *fakeBookingRepo) SetRangeApproval(ctx context.Context, id string, rangeIndex int, flag bool, status string) (*models.BookingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	req.Time[rangeIndex].Flag = flag
	req.Status = status
	return req, nil
}

func (f *fakeBookingRepo) Search(ctx context.Context, term string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	byStatus := models.IsStatus(term)
	for _, r := range f.requests {
		if byStatus {
			if strings.EqualFold(r.Status, term) {
				out = append(out, *r)
			}
			continue
		}
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(term)) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, r := range f.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	return &DefaultBookingService{Repo: repo}, repo
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	return utils.StatusOf(err)
}

func TestCreateStartsPending(t *testing.T) {
	svc, _ := newTestService()

	req, err := svc.Create(context.Background(), "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Status != models.StatusPending {
		t.Fatalf("expected PENDING, got %s", req.Status)
	}
	if len(req.Time) != 1 || req.Time[0].Range != "9am-10am" || req.Time[0].Flag {
		t.Fatalf("ranges must start unapproved: %+v", req.Time)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, "Other", "a@x.com", "2025-02-02", []string{"11am-12pm"})
	if got := statusOf(t, err); got != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got)
	}
}

func TestApproveSetsRangeFlagAndStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})

	updated, err := svc.UpdateSlotStatus(ctx, req.ID, "9am-10am", "APPROVED")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", updated.Status)
	}
	if !updated.Time[0].Flag {
		t.Fatal("range flag must be true after approval")
	}
}

func TestDenyAfterApproveFlipsStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})
	if _, err := svc.UpdateSlotStatus(ctx, req.ID, "9am-10am", "APPROVED"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// No guard against re-flipping a decided request.
	updated, err := svc.UpdateSlotStatus(ctx, req.ID, "9am-10am", "DENIED")
	if err != nil {
		t.Fatalf("deny after approve: %v", err)
	}
	if updated.Status != models.StatusDenied {
		t.Fatalf("expected DENIED, got %s", updated.Status)
	}
	if updated.Time[0].Flag {
		t.Fatal("range flag must be false after deny")
	}
}

func TestUpdateSlotStatusRangeMatching(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am", "3pm-4pm"})

	// Matching ignores case and surrounding whitespace.
	updated, err := svc.UpdateSlotStatus(ctx, req.ID, "  9AM-10AM ", "APPROVED")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !updated.Time[0].Flag || updated.Time[1].Flag {
		t.Fatalf("wrong range approved: %+v", updated.Time)
	}

	_, err = svc.UpdateSlotStatus(ctx, req.ID, "5pm-6pm", "APPROVED")
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown range, got %d", got)
	}
}

func TestUpdateSlotStatusValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})

	_, err := svc.UpdateSlotStatus(ctx, req.ID, "9am-10am", "MAYBE")
	if got := statusOf(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad action, got %d", got)
	}

	_, err = svc.UpdateSlotStatus(ctx, "missing", "9am-10am", "APPROVED")
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Fatalf("expected 404 for missing request, got %d", got)
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})
	b, _ := svc.Create(ctx, "Bea", "b@x.com", "2025-02-01", []string{"9am-10am"})
	svc.Create(ctx, "Cem", "c@x.com", "2025-02-01", []string{"9am-10am"})

	svc.UpdateSlotStatus(ctx, a.ID, "9am-10am", "APPROVED")
	svc.UpdateSlotStatus(ctx, b.ID, "9am-10am", "DENIED")

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 3 || stats.TotalApproved != 1 || stats.TotalDenied != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSearchBranching(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, "Pending Penny", "p@x.com", "2025-02-01", []string{"9am-10am"})
	svc.Create(ctx, "Amit", "a@x.com", "2025-02-01", []string{"9am-10am"})
	svc.UpdateSlotStatus(ctx, a.ID, "9am-10am", "APPROVED")

	// A status keyword filters by status, not by name.
	results, err := svc.Search(ctx, "approved")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != a.ID {
		t.Fatalf("status search failed: %+v", results)
	}

	// Anything else is a name substring match.
	results, err = svc.Search(ctx, "ami")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Amit" {
		t.Fatalf("name search failed: %+v", results)
	}
}
