// Package wizard implements the applicant side of the careers workflow: the
// multi-step application draft, the interview slot calendar, the slot
// selection and the two-phase submission.
package wizard

import (
	"time"

	"go.uber.org/zap"
)

// Remote is everything a session needs from the careers backend.
type Remote interface {
	SlotSource
	Backend
}

type Options struct {
	Location *time.Location
	Now      func() time.Time
	Timeout  time.Duration
	Notifier Notifier
	Logger   *zap.Logger
}

// Session wires one wizard instance. Sessions share nothing, so several can
// run side by side.
type Session struct {
	Store        *Store
	Calendar     *Calendar
	Selection    *Selection
	Orchestrator *Orchestrator
}

func NewSession(remote Remote, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier(opts.Logger)
	}
	store := NewStore()
	sel := NewSelection(SelectionOptions{
		Location: opts.Location,
		Now:      opts.Now,
		Notifier: opts.Notifier,
		Logger:   opts.Logger,
	})
	return &Session{
		Store: store,
		Calendar: NewCalendar(remote, CalendarOptions{
			Location: opts.Location,
			Now:      opts.Now,
			Timeout:  opts.Timeout,
			Notifier: opts.Notifier,
			Logger:   opts.Logger,
		}),
		Selection: sel,
		Orchestrator: NewOrchestrator(store, sel, remote, OrchestratorOptions{
			Timeout:  opts.Timeout,
			Notifier: opts.Notifier,
			Logger:   opts.Logger,
		}),
	}
}
