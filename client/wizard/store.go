package wizard

import (
	"strings"
	"sync"
)

// Store holds one wizard session: the draft, the displayed field errors and
// the current step. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	draft   Draft
	errs    ErrorSet
	step    Step
	reached Step
}

func NewStore() *Store {
	return &Store{errs: ErrorSet{}, step: StepIdentity, reached: StepIdentity}
}

// SetField parses value into a scalar field. An empty (blank) value clears
// the field. On success any error shown for the field is dropped; on failure
// the previous value is kept.
func (s *Store) SetField(key FieldKey, value string) error {
	f, ok := lookup(key)
	if !ok {
		return ErrUnknownField
	}
	if f.kind != kindText {
		return &FieldTypeError{Field: key, Value: value, Reason: "is a file field"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(value) == "" {
		f.clear(&s.draft)
	} else if err := f.set(&s.draft, value); err != nil {
		return err
	}
	delete(s.errs, key)
	return nil
}

// SetFile stores the attachments of a file field. Single-file fields take at
// most one; no files clears the field.
func (s *Store) SetFile(key FieldKey, files ...Attachment) error {
	f, ok := lookup(key)
	if !ok {
		return ErrUnknownField
	}
	if f.kind == kindText {
		return &FieldTypeError{Field: key, Reason: "is not a file field"}
	}
	checked, err := checkAttachments(key, files)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(checked) == 0:
		f.clear(&s.draft)
	case key == CVFile:
		s.draft.CV = &checked[0]
	case key == ProfilePicture:
		s.draft.ProfilePicture = &checked[0]
	case key == CertificationsFiles:
		s.draft.Certifications = checked
	}
	delete(s.errs, key)
	return nil
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Errors returns a copy of the displayed field errors.
func (s *Store) Errors() ErrorSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs.clone()
}

func (s *Store) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Advance validates the current step and moves to the next one. On failure
// the step's errors replace the displayed set and a *ValidationError is
// returned.
func (s *Store) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step <= LastDataStep {
		if errs := Validate(s.step, &s.draft); len(errs) > 0 {
			s.errs = errs
			return &ValidationError{Errors: errs.clone(), Steps: []Step{s.step}}
		}
	}
	s.errs = ErrorSet{}
	if s.step < StepSchedule {
		s.step++
	}
	if s.step > s.reached {
		s.reached = s.step
	}
	return nil
}

// Back moves to the previous step without validating.
func (s *Store) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > StepIdentity {
		s.step--
	}
}

// GoTo jumps to any step already reached.
func (s *Store) GoTo(step Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step < StepIdentity || step > s.reached {
		return ErrStepLocked
	}
	s.step = step
	return nil
}

// Reset discards the draft and starts over.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = Draft{}
	s.errs = ErrorSet{}
	s.step = StepIdentity
	s.reached = StepIdentity
}

// showErrors replaces the displayed errors, e.g. with the union reported by
// a failed submission.
func (s *Store) showErrors(errs ErrorSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = errs.clone()
}
