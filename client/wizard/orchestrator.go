package wizard

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cpicareers/models"

	"go.uber.org/zap"
)

// Backend is the remote side of a submission.
type Backend interface {
	SubmitApplication(ctx context.Context, body io.Reader, contentType string) (*models.IntakeResponse, error)
	BookSlot(ctx context.Context, booking models.BookSlotRequest) error
}

type SubmissionState int

const (
	Editing SubmissionState = iota
	Submitting
	// PendingBooking: the application was stored but the interview is not
	// booked. A retry books the newly selected slot without a second intake.
	PendingBooking
	Submitted
)

func (s SubmissionState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case PendingBooking:
		return "pending-booking"
	case Submitted:
		return "submitted"
	}
	return "editing"
}

type OrchestratorOptions struct {
	// Timeout bounds each remote call. Zero means 30s.
	Timeout  time.Duration
	Notifier Notifier
	Logger   *zap.Logger
}

// Orchestrator runs the two-phase submission: application intake, then the
// interview booking. At most one submission runs at a time.
type Orchestrator struct {
	store    *Store
	sel      *Selection
	backend  Backend
	timeout  time.Duration
	notifier Notifier
	logger   *zap.Logger

	inFlight atomic.Bool

	mu            sync.Mutex
	state         SubmissionState
	applicationID string
	applicant     applicant
	lastErr       error
}

type applicant struct {
	email string
	name  string
}

func NewOrchestrator(store *Store, sel *Selection, backend Backend, opts OrchestratorOptions) *Orchestrator {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier(opts.Logger)
	}
	return &Orchestrator{
		store:    store,
		sel:      sel,
		backend:  backend,
		timeout:  opts.Timeout,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// Submit validates the draft, uploads the application and books the selected
// slot. Failures are reported through the notifier and returned as
// *ValidationError, *IntakeError or *BookingError.
func (o *Orchestrator) Submit(ctx context.Context) error {
	if !o.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	o.mu.Lock()
	state := o.state
	o.mu.Unlock()
	if state == Submitted {
		return ErrAlreadySubmitted
	}

	slot, ok := o.sel.Current()
	if !ok {
		o.notifier.Error(MsgSelectSlot)
		return ErrNoSlotSelected
	}

	if state != PendingBooking {
		if err := o.intake(ctx, slot); err != nil {
			return o.fail(err)
		}
	}
	if err := o.book(ctx, slot); err != nil {
		return o.fail(err)
	}

	o.mu.Lock()
	o.state = Submitted
	o.lastErr = nil
	id := o.applicationID
	o.mu.Unlock()

	o.sel.commit()
	o.store.Reset()
	o.logger.Info("application submitted", zap.String("applicationId", id),
		zap.String("date", slot.Date), zap.String("time", slot.Time))
	o.notifier.Success(MsgSubmitted)
	return nil
}

func (o *Orchestrator) intake(ctx context.Context, slot SelectedSlot) error {
	draft := o.store.Draft()
	if errs, steps := ValidateThrough(LastDataStep, &draft); len(errs) > 0 {
		o.store.showErrors(errs)
		o.notifier.Error(MsgFixErrors)
		return &ValidationError{Errors: errs, Steps: steps}
	}

	body, contentType, err := BuildPayload(&draft, slot)
	if err != nil {
		o.notifier.Error(MsgIntakeFailed)
		return &IntakeError{Err: err}
	}

	o.setState(Submitting)
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	resp, err := o.backend.SubmitApplication(callCtx, body, contentType)
	cancel()
	if err != nil {
		o.setState(Editing)
		o.logger.Warn("application intake failed", zap.Error(err))
		if errs := rejectedFields(err); len(errs) > 0 {
			o.store.showErrors(errs)
			o.notifier.Error(MsgFixErrors)
		} else {
			o.notifier.Error(MsgIntakeFailed)
		}
		return &IntakeError{Err: err}
	}

	o.mu.Lock()
	o.state = PendingBooking
	o.applicationID = resp.ID
	o.applicant = applicant{
		email: strings.TrimSpace(draft.EmailAddress),
		name:  strings.TrimSpace(draft.FullNameEnglish),
	}
	o.mu.Unlock()
	return nil
}

// rejectedFields maps the per-field reasons of a rejected intake onto the
// wizard's fields. Unknown field names are dropped.
func rejectedFields(err error) ErrorSet {
	var rejected interface{ FieldErrors() map[string]string }
	if !errors.As(err, &rejected) {
		return nil
	}
	errs := ErrorSet{}
	for name, reason := range rejected.FieldErrors() {
		key := FieldKey(name)
		if _, ok := lookup(key); ok {
			errs[key] = Label(key) + " " + reason
		}
	}
	return errs
}

func (o *Orchestrator) book(ctx context.Context, slot SelectedSlot) error {
	o.mu.Lock()
	who, id := o.applicant, o.applicationID
	o.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	err := o.backend.BookSlot(callCtx, models.BookSlotRequest{
		Date:           slot.Date,
		Time:           slot.Time,
		ApplicantEmail: who.email,
		ApplicantName:  who.name,
	})
	cancel()
	if err == nil {
		return nil
	}

	msg := MsgBookingFailed
	var svc interface{ ServiceMessage() string }
	if errors.As(err, &svc) && svc.ServiceMessage() != "" {
		msg = svc.ServiceMessage()
	}
	o.logger.Warn("interview booking failed after intake",
		zap.String("applicationId", id), zap.String("date", slot.Date), zap.String("time", slot.Time), zap.Error(err))
	o.notifier.Error(msg)
	// The slot may have been taken; make the applicant pick again.
	o.sel.reset()
	return &BookingError{ApplicationID: id, Message: msg, Err: err}
}

func (o *Orchestrator) fail(err error) error {
	o.mu.Lock()
	o.lastErr = err
	o.mu.Unlock()
	return err
}

func (o *Orchestrator) setState(s SubmissionState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) State() SubmissionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// ApplicationID is set once the intake succeeded.
func (o *Orchestrator) ApplicationID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applicationID
}

// Err returns the error of the last failed submission.
func (o *Orchestrator) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// InFlight reports whether a submission is running.
func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}
