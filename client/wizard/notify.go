package wizard

import "go.uber.org/zap"

// Notifier shows transient messages to the applicant.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct {
	logger *zap.Logger
}

// LogNotifier reports notices through logger.
func LogNotifier(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logNotifier{logger: logger}
}

func (n logNotifier) Success(msg string) { n.logger.Info(msg) }
func (n logNotifier) Error(msg string)   { n.logger.Warn(msg) }

const (
	MsgSlotPassed     = "This slot has already passed"
	MsgSlotBooked     = "This slot is already booked"
	MsgSlotPending    = "This slot is pending approval"
	MsgSlotSelected   = "Interview slot selected. Click 'Submit Application' when ready."
	MsgSlotCleared    = "Selection cleared"
	MsgSelectSlot     = "Please select an interview slot before submitting"
	MsgFixErrors      = "Please complete all required fields"
	MsgIntakeFailed   = "Failed to submit application. Please try again."
	MsgBookingFailed  = "Failed to book interview slot"
	MsgSubmitted      = "Application submitted successfully!"
	MsgMonthLoadError = "Failed to load interview slots"
)
