package wizard

import (
	"sync"
	"time"

	"cpicareers/models"

	"go.uber.org/zap"
)

// SelectedSlot is the slot carried into the submission.
type SelectedSlot struct {
	Date string
	Time string
	ID   string
}

type SelectionState int

const (
	Unselected SelectionState = iota
	Selected
	// Committed is terminal: the booking for the selection succeeded.
	Committed
)

func (s SelectionState) String() string {
	switch s {
	case Selected:
		return "selected"
	case Committed:
		return "committed"
	}
	return "unselected"
}

type SelectionOptions struct {
	Location *time.Location
	Now      func() time.Time
	Notifier Notifier
	Logger   *zap.Logger
}

// Selection holds at most one chosen slot.
type Selection struct {
	mu      sync.Mutex
	current *SelectedSlot
	state   SelectionState
	subs    map[int]func(*SelectedSlot)
	nextSub int

	loc      *time.Location
	now      func() time.Time
	notifier Notifier
	logger   *zap.Logger
}

func NewSelection(opts SelectionOptions) *Selection {
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
	return &Selection{
		subs:     map[int]func(*SelectedSlot){},
		loc:      opts.Location,
		now:      opts.Now,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// Select picks slot on date, replacing any earlier pick. A passed or
// non-open slot leaves the selection untouched and yields a
// *SlotRejectedError.
func (s *Selection) Select(date string, slot models.SlotView) error {
	if reason := slotState(date, slot, s.now(), s.loc); reason != ReasonNone {
		msg := reason.Message()
		s.notifier.Error(msg)
		return &SlotRejectedError{Date: date, Time: slot.Time, Reason: reason, Message: msg}
	}

	s.mu.Lock()
	if s.state == Committed {
		s.mu.Unlock()
		return ErrSelectionCommitted
	}
	picked := &SelectedSlot{Date: date, Time: slot.Time, ID: slot.ID}
	s.current = picked
	s.state = Selected
	subs := s.subscribers()
	s.mu.Unlock()

	s.logger.Debug("slot selected", zap.String("date", date), zap.String("time", slot.Time), zap.String("id", slot.ID))
	s.notifier.Success(MsgSlotSelected)
	publish(subs, picked)
	return nil
}

// Clear drops the selection at the applicant's request.
func (s *Selection) Clear() {
	if s.reset() {
		s.notifier.Success(MsgSlotCleared)
	}
}

// reset drops the selection without a notice. It reports whether anything
// was selected.
func (s *Selection) reset() bool {
	s.mu.Lock()
	if s.state != Selected {
		s.mu.Unlock()
		return false
	}
	s.current = nil
	s.state = Unselected
	subs := s.subscribers()
	s.mu.Unlock()

	publish(subs, nil)
	return true
}

func (s *Selection) commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Selected {
		s.state = Committed
	}
}

// Current returns the selected slot, if any.
func (s *Selection) Current() (SelectedSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return SelectedSlot{}, false
	}
	return *s.current, true
}

func (s *Selection) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe calls fn with every new selection, or nil when it is cleared.
// The returned func removes the subscription.
func (s *Selection) Subscribe(fn func(*SelectedSlot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Selection) subscribers() []func(*SelectedSlot) {
	out := make([]func(*SelectedSlot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func publish(subs []func(*SelectedSlot), slot *SelectedSlot) {
	for _, fn := range subs {
		if slot == nil {
			fn(nil)
			continue
		}
		cp := *slot
		fn(&cp)
	}
}
