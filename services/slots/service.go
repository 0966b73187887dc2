package slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	slotRepo "cpicareers/database/repository/slot"
	"cpicareers/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures a SlotServiceImpl.
type Options struct {
	CacheTTL time.Duration
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

// SlotServiceImpl is the default SlotService.
type SlotServiceImpl struct {
	Repo   slotRepo.SlotRepository
	Cache  MonthCache
	Linker BookingLinker

	ttl    time.Duration
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewSlotService wires the service. Cache and Linker may be nil.
func NewSlotService(repo slotRepo.SlotRepository, cache MonthCache, linker BookingLinker, opts Options) *SlotServiceImpl {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SlotServiceImpl{
		Repo:   repo,
		Cache:  cache,
		Linker: linker,
		ttl:    opts.CacheTTL,
		loc:    opts.Location,
		logger: opts.Logger,
		now:    opts.Now,
	}
}

func (s *SlotServiceImpl) GetMonth(ctx context.Context, year, month int) (models.MonthSlots, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return nil, ErrInvalidMonth
	}
	key := MonthKey(year, month)

	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("month cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	to := fmt.Sprintf("%04d-%02d-31", year, month)
	slots, err := s.Repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	result := groupByDate(slots)

	if s.Cache != nil && s.ttl > 0 {
		if err := s.Cache.Set(ctx, key, result, s.ttl); err != nil {
			s.logger.Warn("month cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

// groupByDate builds the month map with each day's slots ordered by time.
func groupByDate(slots []models.InterviewSlot) models.MonthSlots {
	result := make(models.MonthSlots)
	for _, slot := range slots {
		result[slot.Date] = append(result[slot.Date], slot.View())
	}
	for _, day := range result {
		sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
	}
	return result
}

func (s *SlotServiceImpl) Book(ctx context.Context, req models.BookSlotRequest) (*models.InterviewSlot, error) {
	start, err := models.ParseSlotTime(req.Date, req.Time, s.loc)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	now := s.now()
	if !start.After(now) {
		return nil, ErrSlotUnavailable
	}

	clock := start.Format(models.TimeLayout)
	email := strings.ToLower(strings.TrimSpace(req.ApplicantEmail))
	slot, err := s.Repo.TryBook(ctx, req.Date, clock, email, strings.TrimSpace(req.ApplicantName), now)
	switch {
	case errors.Is(err, slotRepo.ErrNotFound):
		return nil, ErrSlotNotFound
	case errors.Is(err, slotRepo.ErrNotOpen):
		return nil, ErrSlotUnavailable
	case err != nil:
		return nil, err
	}

	s.invalidate(ctx, start)

	if s.Linker != nil {
		linked, err := s.Linker.MarkScheduled(ctx, email, *slot, now)
		if err != nil {
			// The booking stands; reconciliation will settle the application.
			s.logger.Error("failed to link booking to application",
				zap.String("slotId", slot.ID), zap.Error(err))
		} else if !linked {
			s.logger.Info("booking has no matching application yet",
				zap.String("slotId", slot.ID), zap.String("email", email))
		}
	}

	s.logger.Info("interview slot booked",
		zap.String("slotId", slot.ID), zap.String("date", slot.Date), zap.String("time", slot.Time))
	return slot, nil
}

func (s *SlotServiceImpl) CreateSlots(ctx context.Context, req models.CreateSlotsRequest) ([]string, error) {
	seen := make(map[string]bool, len(req.Slots))
	months := make(map[string]bool)
	slots := make([]models.InterviewSlot, 0, len(req.Slots))
	created := s.now()

	for _, in := range req.Slots {
		start, err := models.ParseSlotTime(in.Date, in.Time, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidSlot, in.Date, in.Time)
		}
		status := in.Status
		if status == "" {
			status = models.SlotOpen
		}
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		clock := start.Format(models.TimeLayout)
		key := in.Date + " " + clock
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlot, key)
		}
		seen[key] = true

		if _, err := s.Repo.GetByDateTime(ctx, in.Date, clock); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlot, key)
		} else if !errors.Is(err, slotRepo.ErrNotFound) {
			return nil, err
		}

		slots = append(slots, models.InterviewSlot{
			ID:        uuid.New().String(),
			Date:      in.Date,
			Time:      clock,
			Status:    status,
			CreatedAt: created,
		})
		months[MonthKey(start.Year(), int(start.Month()))] = true
	}

	ids, err := s.Repo.CreateMany(ctx, slots)
	if err != nil {
		return nil, err
	}
	s.invalidateKeys(ctx, months)
	s.logger.Info("interview slots created", zap.Int("count", len(ids)))
	return ids, nil
}

func (s *SlotServiceImpl) SetStatus(ctx context.Context, id string, status models.SlotStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	slot, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	s.invalidateSlot(ctx, slot)
	return nil
}

func (s *SlotServiceImpl) DeleteSlot(ctx context.Context, id string) error {
	slot, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	switch err := s.Repo.DeleteUnbooked(ctx, id); {
	case errors.Is(err, slotRepo.ErrNotFound):
		return ErrSlotNotFound
	case errors.Is(err, slotRepo.ErrNotOpen):
		return ErrSlotBooked
	case err != nil:
		return err
	}
	s.invalidateSlot(ctx, slot)
	return nil
}

func (s *SlotServiceImpl) lookup(ctx context.Context, id string) (*models.InterviewSlot, error) {
	slot, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, slotRepo.ErrNotFound) {
		return nil, ErrSlotNotFound
	}
	return slot, err
}

func (s *SlotServiceImpl) invalidateSlot(ctx context.Context, slot *models.InterviewSlot) {
	day, err := time.ParseInLocation(models.DateLayout, slot.Date, s.loc)
	if err != nil {
		return
	}
	s.invalidate(ctx, day)
}

func (s *SlotServiceImpl) invalidate(ctx context.Context, t time.Time) {
	s.invalidateKeys(ctx, map[string]bool{MonthKey(t.Year(), int(t.Month())): true})
}

func (s *SlotServiceImpl) invalidateKeys(ctx context.Context, keys map[string]bool) {
	if s.Cache == nil || len(keys) == 0 {
		return
	}
	list := make([]string, 0, len(keys))
	for k := range keys {
		list = append(list, k)
	}
	if err := s.Cache.Delete(ctx, list...); err != nil {
		s.logger.Warn("month cache invalidation failed", zap.Strings("keys", list), zap.Error(err))
	}
}
