package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	applicationRepo "cpicareers/database/repository/application"
	slotRepo "cpicareers/database/repository/slot"
	"cpicareers/models"
)

type memApps struct {
	apps map[string]*models.Application
	// settleFirst simulates the booking link winning the race.
	settleFirst models.ApplicationStatus
	listed      models.ApplicationStatus
}

func (m *memApps) Create(_ context.Context, app *models.Application) error {
	m.apps[app.ID] = app
	return nil
}

func (m *memApps) GetByID(_ context.Context, id string) (*models.Application, error) {
	app, ok := m.apps[id]
	if !ok {
		return nil, applicationRepo.ErrNotFound
	}
	cp := *app
	return &cp, nil
}

func (m *memApps) ListByStatus(_ context.Context, status models.ApplicationStatus, _ int64) ([]models.Application, error) {
	m.listed = status
	return nil, nil
}

func (m *memApps) MarkScheduled(context.Context, string, models.InterviewSlot, time.Time) (bool, error) {
	return false, nil
}

func (m *memApps) Resolve(_ context.Context, id string, status models.ApplicationStatus, at time.Time) (bool, error) {
	app := m.apps[id]
	if m.settleFirst != "" {
		app.Status = m.settleFirst
	}
	if app.Status != models.ApplicationReceived {
		return false, nil
	}
	app.Status = status
	app.ReconciledAt = &at
	return true, nil
}

func (m *memApps) EnsureIndexes(context.Context) error { return nil }

type memSlots struct {
	slotRepo.SlotRepository
	slots map[string]models.InterviewSlot
}

func (m *memSlots) GetByDateTime(_ context.Context, date, clock string) (*models.InterviewSlot, error) {
	s, ok := m.slots[date+" "+clock]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	return &s, nil
}

func received(id, email, date, clock string) *models.Application {
	return &models.Application{
		ID: id, EmailAddress: email, Status: models.ApplicationReceived,
		InterviewSlotDate: date, InterviewSlotTime: clock,
	}
}

func TestReconcile(t *testing.T) {
	slots := &memSlots{slots: map[string]models.InterviewSlot{
		"2025-03-12 10:00": {ID: "s1", Date: "2025-03-12", Time: "10:00", Status: models.SlotBooked, ApplicantEmail: "mona@example.com"},
		"2025-03-12 11:00": {ID: "s2", Date: "2025-03-12", Time: "11:00", Status: models.SlotOpen},
		"2025-03-12 12:00": {ID: "s3", Date: "2025-03-12", Time: "12:00", Status: models.SlotBooked, ApplicantEmail: "other@example.com"},
	}}
	apps := &memApps{apps: map[string]*models.Application{
		"booked":   received("booked", "mona@example.com", "2025-03-12", "10:00"),
		"open":     received("open", "mona@example.com", "2025-03-12", "11:00"),
		"taken":    received("taken", "mona@example.com", "2025-03-12", "12:00"),
		"vanished": received("vanished", "mona@example.com", "2025-03-13", "10:00"),
		"settled":  {ID: "settled", Status: models.ApplicationScheduled},
	}}
	svc := NewApplicationService(apps, slots, nil)

	tests := map[string]models.ApplicationStatus{
		"booked":   models.ApplicationScheduled,
		"open":     models.ApplicationOrphaned,
		"taken":    models.ApplicationOrphaned,
		"vanished": models.ApplicationOrphaned,
		"settled":  models.ApplicationScheduled,
	}
	for id, want := range tests {
		got, err := svc.Reconcile(context.Background(), id)
		if err != nil {
			t.Fatalf("Reconcile(%s): %v", id, err)
		}
		if got != want || apps.apps[id].Status != want {
			t.Errorf("Reconcile(%s) = %s (stored %s), want %s", id, got, apps.apps[id].Status, want)
		}
	}
	if apps.apps["settled"].ReconciledAt != nil {
		t.Fatalf("settled application should not be touched")
	}
}

func TestReconcileLosesRaceToBookingLink(t *testing.T) {
	apps := &memApps{
		apps:        map[string]*models.Application{"a": received("a", "x@y.co", "2025-03-12", "10:00")},
		settleFirst: models.ApplicationScheduled,
	}
	svc := NewApplicationService(apps, &memSlots{slots: map[string]models.InterviewSlot{}}, nil)

	got, err := svc.Reconcile(context.Background(), "a")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if got != models.ApplicationScheduled {
		t.Fatalf("expected the concurrent scheduled status, got %s", got)
	}
}

func TestReconcileUnknownApplication(t *testing.T) {
	svc := NewApplicationService(&memApps{apps: map[string]*models.Application{}}, &memSlots{}, nil)
	if _, err := svc.Reconcile(context.Background(), "nope"); !errors.Is(err, applicationRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListValidatesStatus(t *testing.T) {
	apps := &memApps{apps: map[string]*models.Application{}}
	svc := NewApplicationService(apps, &memSlots{}, nil)

	if _, err := svc.List(context.Background(), "archived", 10); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.List(context.Background(), models.ApplicationOrphaned, 10); err != nil {
		t.Fatalf("List: %v", err)
	}
	if apps.listed != models.ApplicationOrphaned {
		t.Fatalf("status filter not forwarded")
	}
}
