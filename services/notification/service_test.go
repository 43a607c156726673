package notification

import (
	"context"
	"fmt"
	"testing"

	"coachify/models"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeDeviceRepo struct {
	devices []models.Device
	history []models.NotificationRecord
}

func (f *fakeDeviceRepo) SaveToken(ctx context.Context, device *models.Device) (*models.Device, error) {
	for i := range f.devices {
		if f.devices[i].FCMToken == device.FCMToken {
			return &f.devices[i], nil
		}
	}
	device.ID = fmt.Sprintf("dev-%d", len(f.devices)+1)
	f.devices = append(f.devices, *device)
	return device, nil
}

func (f *fakeDeviceRepo) GetAll(ctx context.Context) ([]models.Device, error) {
	return f.devices, nil
}

func (f *fakeDeviceRepo) CreateRecords(ctx context.Context, records []models.NotificationRecord) error {
	f.history = append(f.history, records...)
	return nil
}

func (f *fakeDeviceRepo) ListByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	var out []models.NotificationRecord
	for _, r := range f.history {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDeviceRepo) ListUnreadByUser(ctx context.Context, userID string) ([]models.NotificationRecord, error) {
	var out []models.NotificationRecord
	for _, r := range f.history {
		if r.UserID == userID && !r.Read {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDeviceRepo) MarkRead(ctx context.Context, recordID string) (*models.NotificationRecord, error) {
	for i := range f.history {
		if f.history[i].ID == recordID {
			f.history[i].Read = true
			return &f.history[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDeviceRepo) ListAll(ctx context.Context) ([]models.NotificationRecord, error) {
	return f.history, nil
}

type fakeMessenger struct {
	batches [][]string
}

func (f *fakeMessenger) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, msg.Tokens)
	return &messaging.BatchResponse{SuccessCount: len(msg.Tokens)}, nil
}

func newTestService() (*DefaultNotificationService, *fakeDeviceRepo, *fakeMessenger) {
	repo := &fakeDeviceRepo{}
	sender := &fakeMessenger{}
	return &DefaultNotificationService{Repo: repo, Client: sender}, repo, sender
}

func TestRegisterDeviceIdempotentOnToken(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	first, err := svc.RegisterDevice(ctx, "u1", "amit", "a@x.com", "tok-1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := svc.RegisterDevice(ctx, "u2", "other", "o@x.com", "tok-1")
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("re-registering the same token must return the existing record")
	}
	if len(repo.devices) != 1 {
		t.Fatalf("expected one device, got %d", len(repo.devices))
	}
}

func TestSendCustomChunksByTwoHundred(t *testing.T) {
	svc, repo, sender := newTestService()
	ctx := context.Background()

	for i := 0; i < 450; i++ {
		repo.devices = append(repo.devices, models.Device{
			UserID:   fmt.Sprintf("u%d", i),
			FCMToken: fmt.Sprintf("tok-%d", i),
		})
	}

	result, err := svc.SendCustom(ctx, "title", "body", "")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(sender.batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(sender.batches))
	}
	if len(sender.batches[0]) != 200 || len(sender.batches[1]) != 200 || len(sender.batches[2]) != 50 {
		t.Fatalf("unexpected batch sizes: %d %d %d",
			len(sender.batches[0]), len(sender.batches[1]), len(sender.batches[2]))
	}
	if result.SuccessCount != 450 || result.Devices != 450 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(repo.history) != 450 {
		t.Fatalf("expected one history row per token, got %d", len(repo.history))
	}
}

func TestSendCustomSkipsEmptyTokens(t *testing.T) {
	svc, repo, sender := newTestService()
	ctx := context.Background()

	repo.devices = []models.Device{
		{UserID: "u1", FCMToken: "tok-1"},
		{UserID: "u2", FCMToken: ""},
	}

	result, err := svc.SendCustom(ctx, "title", "body", "")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if result.Devices != 1 {
		t.Fatalf("expected 1 target, got %d", result.Devices)
	}
	if len(sender.batches) != 1 || len(sender.batches[0]) != 1 {
		t.Fatalf("unexpected batches: %+v", sender.batches)
	}
}

func TestSendCustomNoDevices(t *testing.T) {
	svc, _, sender := newTestService()

	result, err := svc.SendCustom(context.Background(), "title", "body", "")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if result.Devices != 0 || len(sender.batches) != 0 {
		t.Fatal("no devices must mean no FCM calls")
	}
}

func TestHistoryReadFlow(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.history = []models.NotificationRecord{
		{ID: "n1", UserID: "u1", Title: "a"},
		{ID: "n2", UserID: "u1", Title: "b"},
		{ID: "n3", UserID: "u2", Title: "c"},
	}

	unread, err := svc.GetUnreadForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread, got %d", len(unread))
	}

	rec, err := svc.MarkRead(ctx, "n1")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !rec.Read {
		t.Fatal("record must be read after MarkRead")
	}

	unread, _ = svc.GetUnreadForUser(ctx, "u1")
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread after marking, got %d", len(unread))
	}

	all, _ := svc.GetForUser(ctx, "u1")
	if len(all) != 2 {
		t.Fatalf("expected 2 total for user, got %d", len(all))
	}
}
