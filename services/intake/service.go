package intake

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"cpicareers/models"
	"cpicareers/services/storage"
	"cpicareers/services/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	ReconcileAfter time.Duration
	Logger         *zap.Logger
	Now            func() time.Time
}

// IntakeServiceImpl validates, stores and schedules reconciliation of
// incoming applications.
type IntakeServiceImpl struct {
	Repo    ApplicationCreator
	Storage storage.StorageService
	Queue   Enqueuer

	validate       *validator.Validate
	reconcileAfter time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

func NewIntakeService(repo ApplicationCreator, store storage.StorageService, queue Enqueuer, opts Options) *IntakeServiceImpl {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &IntakeServiceImpl{
		Repo:           repo,
		Storage:        store,
		Queue:          queue,
		validate:       newValidator(),
		reconcileAfter: opts.ReconcileAfter,
		logger:         opts.Logger,
		now:            opts.Now,
	}
}

// newValidator reports field errors under their multipart names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		return name
	})
	return v
}

func (s *IntakeServiceImpl) Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error) {
	if err := s.checkFields(form); err != nil {
		return nil, err
	}
	files, formErr := checkAttachments(form)
	if formErr != nil {
		return nil, formErr
	}

	id := uuid.New().String()
	uploaded, err := s.upload(ctx, id, files)
	if err != nil {
		s.discard(uploaded)
		return nil, err
	}

	app := buildApplication(id, form, uploaded, s.now())
	if err := s.Repo.Create(ctx, app); err != nil {
		s.discard(uploaded)
		return nil, err
	}

	s.scheduleReconcile(app)
	s.logger.Info("application received",
		zap.String("applicationId", app.ID),
		zap.String("position", string(app.PositionAppliedFor)),
		zap.String("slotDate", app.InterviewSlotDate),
		zap.String("slotTime", app.InterviewSlotTime))
	return app, nil
}

func (s *IntakeServiceImpl) checkFields(form *models.ApplicationForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return &FormError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return "must be greater than " + fe.Param()
	}
	return "is invalid"
}

type uploadedFile struct {
	field string
	file  models.StoredFile
}

func (s *IntakeServiceImpl) upload(ctx context.Context, id string, files []checkedFile) ([]uploadedFile, error) {
	out := make([]uploadedFile, 0, len(files))
	for _, cf := range files {
		f, err := cf.header.Open()
		if err != nil {
			return out, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		stored, err := s.Storage.Upload(ctx, id, cf.header.Filename, cf.mime, f)
		f.Close()
		if err != nil {
			return out, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		out = append(out, uploadedFile{field: cf.field, file: *stored})
	}
	return out, nil
}

// discard removes files uploaded for an application that was not stored.
func (s *IntakeServiceImpl) discard(files []uploadedFile) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, u := range files {
		if err := s.Storage.Delete(ctx, u.file); err != nil {
			s.logger.Error("failed to delete orphaned attachment",
				zap.String("publicId", u.file.PublicID), zap.Error(err))
		}
	}
}

func (s *IntakeServiceImpl) scheduleReconcile(app *models.Application) {
	if s.Queue == nil {
		return
	}
	task, opts, err := tasks.NewReconcileTask(app.ID, s.now().Add(s.reconcileAfter))
	if err == nil {
		_, err = s.Queue.Enqueue(task, opts...)
	}
	if err != nil {
		s.logger.Error("failed to schedule application reconciliation",
			zap.String("applicationId", app.ID), zap.Error(err))
	}
}

func buildApplication(id string, form *models.ApplicationForm, files []uploadedFile, now time.Time) *models.Application {
	app := &models.Application{
		ID:                    id,
		Status:                models.ApplicationReceived,
		FullNameEnglish:       strings.TrimSpace(form.FullNameEnglish),
		FullNameArabic:        strings.TrimSpace(form.FullNameArabic),
		NationalID:            strings.TrimSpace(form.NationalID),
		DateOfBirth:           form.DateOfBirth,
		MobileNumber:          strings.TrimSpace(form.MobileNumber),
		WhatsappNumber:        strings.TrimSpace(form.WhatsappNumber),
		EmailAddress:          strings.ToLower(strings.TrimSpace(form.EmailAddress)),
		CurrentAddress:        strings.TrimSpace(form.CurrentAddress),
		PositionAppliedFor:    models.Position(form.PositionAppliedFor),
		YearsOfExperience:     models.ExperienceRange(form.YearsOfExperience),
		CurrentLastPosition:   strings.TrimSpace(form.CurrentLastPosition),
		ExpectedSalary:        form.ExpectedSalary,
		HighestEducationLevel: models.EducationLevel(form.HighestEducationLevel),
		ArabicProficiency:     models.LanguageLevel(form.ArabicProficiency),
		EnglishProficiency:    models.LanguageLevel(form.EnglishProficiency),
		KeySkills:             strings.TrimSpace(form.KeySkills),
		Motivation:            strings.TrimSpace(form.Motivation),
		NoticePeriod:          models.NoticePeriod(form.NoticePeriod),
		IntroVideoLink:        strings.TrimSpace(form.IntroVideoLink),
		InterviewSlotID:       form.InterviewSlotID,
		InterviewSlotDate:     form.InterviewSlotDate,
		InterviewSlotTime:     normalizeClock(form.InterviewSlotTime),
		CreatedAt:             now,
	}
	for _, u := range files {
		switch u.field {
		case models.FieldCV:
			app.CV = u.file
		case models.FieldProfilePicture:
			app.ProfilePicture = u.file
		case models.FieldCertifications:
			app.Certifications = append(app.Certifications, u.file)
		}
	}
	return app
}

// normalizeClock trims seconds so the record matches the slot's HH:MM key.
func normalizeClock(clock string) string {
	if t, err := time.Parse("15:04:05", clock); err == nil {
		return t.Format(models.TimeLayout)
	}
	return clock
}
