package applications

import (
	"context"
	"errors"
	"time"

	applicationRepo "cpicareers/database/repository/application"
	slotRepo "cpicareers/database/repository/slot"
	"cpicareers/models"

	"go.uber.org/zap"
)

var ErrInvalidStatus = errors.New("invalid application status")

// ApplicationService exposes received applications to the admin console and
// settles the two-step intake/booking flow after the fact.
type ApplicationService interface {
	List(ctx context.Context, status models.ApplicationStatus, limit int64) ([]models.Application, error)
	Reconcile(ctx context.Context, applicationID string) (models.ApplicationStatus, error)
}

type ApplicationServiceImpl struct {
	Apps   applicationRepo.ApplicationRepository
	Slots  slotRepo.SlotRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewApplicationService(apps applicationRepo.ApplicationRepository, slots slotRepo.SlotRepository, logger *zap.Logger) *ApplicationServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationServiceImpl{Apps: apps, Slots: slots, logger: logger, now: time.Now}
}

func (s *ApplicationServiceImpl) List(ctx context.Context, status models.ApplicationStatus, limit int64) ([]models.Application, error) {
	switch status {
	case "", models.ApplicationReceived, models.ApplicationScheduled, models.ApplicationOrphaned:
	default:
		return nil, ErrInvalidStatus
	}
	return s.Apps.ListByStatus(ctx, status, limit)
}

// Reconcile marks a received application scheduled when its slot is booked by
// the same applicant, and orphaned otherwise. Already settled applications
// keep their status.
func (s *ApplicationServiceImpl) Reconcile(ctx context.Context, applicationID string) (models.ApplicationStatus, error) {
	app, err := s.Apps.GetByID(ctx, applicationID)
	if err != nil {
		return "", err
	}
	if app.Status != models.ApplicationReceived {
		return app.Status, nil
	}

	outcome := models.ApplicationOrphaned
	slot, err := s.Slots.GetByDateTime(ctx, app.InterviewSlotDate, app.InterviewSlotTime)
	switch {
	case err == nil:
		if slot.Status == models.SlotBooked && slot.ApplicantEmail == app.EmailAddress {
			outcome = models.ApplicationScheduled
		}
	case errors.Is(err, slotRepo.ErrNotFound):
	default:
		return "", err
	}

	updated, err := s.Apps.Resolve(ctx, app.ID, outcome, s.now())
	if err != nil {
		return "", err
	}
	if !updated {
		// Settled concurrently, most likely by the booking link.
		current, err := s.Apps.GetByID(ctx, app.ID)
		if err != nil {
			return "", err
		}
		return current.Status, nil
	}

	if outcome == models.ApplicationOrphaned {
		s.logger.Warn("application has no booking",
			zap.String("applicationId", app.ID),
			zap.String("email", app.EmailAddress),
			zap.String("slotDate", app.InterviewSlotDate),
			zap.String("slotTime", app.InterviewSlotTime))
	} else {
		s.logger.Info("application reconciled", zap.String("applicationId", app.ID), zap.String("status", string(outcome)))
	}
	return outcome, nil
}
