package wizard

import (
	"context"
	"sort"
	"sync"
	"time"

	"cpicareers/models"

	"go.uber.org/zap"
)

// SlotSource loads the slots of one month keyed by ISO date.
type SlotSource interface {
	FetchMonth(ctx context.Context, year int, month time.Month) (models.MonthSlots, error)
}

type CalendarOptions struct {
	Location *time.Location
	Now      func() time.Time
	// Timeout bounds each month fetch. Zero means no extra bound.
	Timeout  time.Duration
	Notifier Notifier
	Logger   *zap.Logger
}

// Calendar shows slot availability for a navigable month. Each navigation
// issues one fetch; a fetch superseded by a later navigation is cancelled and
// its result discarded.
type Calendar struct {
	src      SlotSource
	loc      *time.Location
	now      func() time.Time
	timeout  time.Duration
	notifier Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	year    int
	month   time.Month
	gen     uint64
	cancel  context.CancelFunc
	loading bool
	lastErr error

	data      models.MonthSlots
	dataYear  int
	dataMonth time.Month
}

// NewCalendar targets the current month. Nothing is fetched until Load.
func NewCalendar(src SlotSource, opts CalendarOptions) *Calendar {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier(opts.Logger)
	}
	now := opts.Now().In(opts.Location)
	return &Calendar{
		src:      src,
		loc:      opts.Location,
		now:      opts.Now,
		timeout:  opts.Timeout,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		year:     now.Year(),
		month:    now.Month(),
		loading:  true,
	}
}

// Load fetches the targeted month.
func (c *Calendar) Load(ctx context.Context) error {
	c.mu.Lock()
	y, m := c.year, c.month
	c.mu.Unlock()
	return c.Show(ctx, y, m)
}

// Next moves one month forward.
func (c *Calendar) Next(ctx context.Context) error { return c.shift(ctx, 1) }

// Prev moves one month back.
func (c *Calendar) Prev(ctx context.Context) error { return c.shift(ctx, -1) }

func (c *Calendar) shift(ctx context.Context, delta int) error {
	c.mu.Lock()
	first := time.Date(c.year, c.month+time.Month(delta), 1, 0, 0, 0, 0, c.loc)
	c.mu.Unlock()
	return c.Show(ctx, first.Year(), first.Month())
}

// Show targets year/month and fetches it. It returns ErrStaleResponse when
// another navigation happened before the fetch completed. On failure the
// previously loaded month stays in place.
func (c *Calendar) Show(ctx context.Context, year int, month time.Month) error {
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	year, month = first.Year(), first.Month()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	c.year, c.month = year, month
	c.loading = true
	var (
		fetchCtx context.Context
		cancel   context.CancelFunc
	)
	if c.timeout > 0 {
		fetchCtx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		fetchCtx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel
	c.mu.Unlock()

	slots, err := c.src.FetchMonth(fetchCtx, year, month)
	cancel()

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale month response", zap.Int("year", year), zap.Int("month", int(month)))
		return ErrStaleResponse
	}
	c.loading = false
	c.cancel = nil
	if err != nil {
		c.lastErr = err
		c.mu.Unlock()
		c.logger.Warn("month fetch failed", zap.Int("year", year), zap.Int("month", int(month)), zap.Error(err))
		c.notifier.Error(MsgMonthLoadError)
		return err
	}
	c.lastErr = nil
	c.data = slots
	c.dataYear, c.dataMonth = year, month
	c.mu.Unlock()
	return nil
}

// Month returns the targeted month.
func (c *Calendar) Month() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.year, c.month
}

func (c *Calendar) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the last completed fetch.
func (c *Calendar) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Slots returns the last successfully loaded month and which month it is.
func (c *Calendar) Slots() (models.MonthSlots, int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, c.dataYear, c.dataMonth
}

// Selectable reports whether slot on date can be picked right now.
func (c *Calendar) Selectable(date string, slot models.SlotView) (bool, DisabledReason) {
	reason := slotState(date, slot, c.now(), c.loc)
	return reason == ReasonNone, reason
}

// Cell is one slot as rendered in the grid.
type Cell struct {
	Slot     models.SlotView
	Disabled bool
	Reason   DisabledReason
}

// Day is one square of the month grid.
type Day struct {
	Date    time.Time
	ISO     string
	InMonth bool
	Today   bool
	Cells   []Cell
}

// Days lays out the targeted month as whole Sunday-first weeks. Slots are
// filled in only when the loaded data is for that month.
func (c *Calendar) Days() []Day {
	c.mu.Lock()
	year, month := c.year, c.month
	var data models.MonthSlots
	if c.dataYear == year && c.dataMonth == month {
		data = c.data
	}
	c.mu.Unlock()

	now := c.now().In(c.loc)
	today := now.Format(models.DateLayout)
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format(models.DateLayout)
		day := Day{Date: d, ISO: iso, InMonth: d.Month() == month, Today: iso == today}
		if day.InMonth {
			for _, slot := range sortedSlots(data[iso]) {
				reason := slotState(iso, slot, now, c.loc)
				day.Cells = append(day.Cells, Cell{Slot: slot, Disabled: reason != ReasonNone, Reason: reason})
			}
		}
		days = append(days, day)
	}
	return days
}

func sortedSlots(in []models.SlotView) []models.SlotView {
	out := append([]models.SlotView(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Summary counts the loaded month's slots by status.
type Summary struct {
	Total   int
	Open    int
	Pending int
	Booked  int
}

// Summary counts the targeted month only; it is zero until that month loads.
func (c *Calendar) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	var s Summary
	if c.dataYear != c.year || c.dataMonth != c.month {
		return s
	}
	for _, day := range c.data {
		for _, slot := range day {
			s.Total++
			switch slot.Status {
			case models.SlotOpen:
				s.Open++
			case models.SlotPending:
				s.Pending++
			case models.SlotBooked:
				s.Booked++
			}
		}
	}
	return s
}
