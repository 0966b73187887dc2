package wizard

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"cpicareers/models"

	"github.com/go-playground/validator/v10"
)

// FieldKey names a draft field. The values double as multipart part names.
type FieldKey string

const (
	FullNameEnglish       FieldKey = models.FieldFullNameEnglish
	FullNameArabic        FieldKey = models.FieldFullNameArabic
	NationalID            FieldKey = models.FieldNationalID
	DateOfBirth           FieldKey = models.FieldDateOfBirth
	MobileNumber          FieldKey = models.FieldMobileNumber
	WhatsappNumber        FieldKey = models.FieldWhatsappNumber
	EmailAddress          FieldKey = models.FieldEmailAddress
	CurrentAddress        FieldKey = models.FieldCurrentAddress
	PositionAppliedFor    FieldKey = models.FieldPositionAppliedFor
	YearsOfExperience     FieldKey = models.FieldYearsOfExperience
	CurrentLastPosition   FieldKey = models.FieldCurrentLastPosition
	ExpectedSalary        FieldKey = models.FieldExpectedSalary
	HighestEducationLevel FieldKey = models.FieldHighestEducationLevel
	ArabicProficiency     FieldKey = models.FieldArabicProficiency
	EnglishProficiency    FieldKey = models.FieldEnglishProficiency
	KeySkills             FieldKey = models.FieldKeySkills
	CVFile                FieldKey = models.FieldCV
	ProfilePicture        FieldKey = models.FieldProfilePicture
	CertificationsFiles   FieldKey = models.FieldCertifications
	Motivation            FieldKey = models.FieldMotivation
	NoticePeriod          FieldKey = models.FieldNoticePeriod
	IntroVideoLink        FieldKey = models.FieldIntroVideoLink
)

// Step is one page of the wizard.
type Step int

const (
	StepIdentity Step = iota + 1
	StepProfessional
	StepQualifications
	StepDocuments
	StepSchedule
)

// LastDataStep is the final step that collects draft fields.
const LastDataStep = StepDocuments

func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "Personal & Contact"
	case StepProfessional:
		return "Professional"
	case StepQualifications:
		return "Qualifications"
	case StepDocuments:
		return "Documents & Motivation"
	case StepSchedule:
		return "Interview"
	}
	return "Step " + strconv.Itoa(int(s))
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindFile
	kindFiles
)

type field struct {
	key      FieldKey
	label    string
	step     Step
	required bool
	kind     fieldKind
	// get returns the wire value, "" when the field is not filled in.
	get func(d *Draft) string
	// set parses and stores a non-empty value. Scalar fields only.
	set func(d *Draft, v string) error
	// clear resets the field to its zero value.
	clear func(d *Draft)
}

var fields = []field{
	textField(FullNameEnglish, "Full name (English)", StepIdentity, true, func(d *Draft) *string { return &d.FullNameEnglish }),
	textField(FullNameArabic, "Full name (Arabic)", StepIdentity, true, func(d *Draft) *string { return &d.FullNameArabic }),
	textField(NationalID, "National ID", StepIdentity, true, func(d *Draft) *string { return &d.NationalID }),
	dateField(DateOfBirth, "Date of birth", StepIdentity, true, func(d *Draft) *time.Time { return &d.DateOfBirth }),
	textField(MobileNumber, "Mobile number", StepIdentity, true, func(d *Draft) *string { return &d.MobileNumber }),
	textField(WhatsappNumber, "WhatsApp number", StepIdentity, true, func(d *Draft) *string { return &d.WhatsappNumber }),
	emailField(EmailAddress, "Email address", StepIdentity, true, func(d *Draft) *string { return &d.EmailAddress }),
	textField(CurrentAddress, "Current address", StepIdentity, true, func(d *Draft) *string { return &d.CurrentAddress }),

	enumField(PositionAppliedFor, "Position applied for", StepProfessional, true, models.Positions, func(d *Draft) *models.Position { return &d.PositionAppliedFor }),
	enumField(YearsOfExperience, "Years of experience", StepProfessional, true, models.ExperienceRanges, func(d *Draft) *models.ExperienceRange { return &d.YearsOfExperience }),
	textField(CurrentLastPosition, "Current/last position", StepProfessional, true, func(d *Draft) *string { return &d.CurrentLastPosition }),
	salaryField(ExpectedSalary, "Expected salary", StepProfessional, true),

	enumField(HighestEducationLevel, "Highest education level", StepQualifications, true, models.EducationLevels, func(d *Draft) *models.EducationLevel { return &d.HighestEducationLevel }),
	enumField(ArabicProficiency, "Arabic proficiency", StepQualifications, true, models.LanguageLevels, func(d *Draft) *models.LanguageLevel { return &d.ArabicProficiency }),
	enumField(EnglishProficiency, "English proficiency", StepQualifications, true, models.LanguageLevels, func(d *Draft) *models.LanguageLevel { return &d.EnglishProficiency }),
	textField(KeySkills, "Key skills", StepQualifications, true, func(d *Draft) *string { return &d.KeySkills }),

	fileField(CVFile, "CV", StepDocuments, true, func(d *Draft) **Attachment { return &d.CV }),
	fileField(ProfilePicture, "Profile picture", StepDocuments, true, func(d *Draft) **Attachment { return &d.ProfilePicture }),
	{
		key: CertificationsFiles, label: "Certifications", step: StepDocuments, kind: kindFiles,
		get: func(d *Draft) string {
			names := make([]string, 0, len(d.Certifications))
			for _, a := range d.Certifications {
				if !a.empty() {
					names = append(names, a.Name)
				}
			}
			return strings.Join(names, ",")
		},
		clear: func(d *Draft) { d.Certifications = nil },
	},
	textField(Motivation, "Why join CPI", StepDocuments, true, func(d *Draft) *string { return &d.Motivation }),
	enumField(NoticePeriod, "Notice period", StepDocuments, false, models.NoticePeriods, func(d *Draft) *models.NoticePeriod { return &d.NoticePeriod }),
	urlField(IntroVideoLink, "Intro video link", StepDocuments, false, func(d *Draft) *string { return &d.IntroVideoLink }),
}

var fieldIndex = func() map[FieldKey]*field {
	m := make(map[FieldKey]*field, len(fields))
	for i := range fields {
		m[fields[i].key] = &fields[i]
	}
	return m
}()

func lookup(key FieldKey) (*field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// Fields returns the keys of a step in display order.
func Fields(step Step) []FieldKey {
	var out []FieldKey
	for _, f := range fields {
		if f.step == step {
			out = append(out, f.key)
		}
	}
	return out
}

// Label returns the display label of a field.
func Label(key FieldKey) string {
	if f, ok := lookup(key); ok {
		return f.label
	}
	return string(key)
}

// Required reports whether the field must be filled in.
func Required(key FieldKey) bool {
	f, ok := lookup(key)
	return ok && f.required
}

// StepOf returns the step a field belongs to.
func StepOf(key FieldKey) (Step, bool) {
	f, ok := lookup(key)
	if !ok {
		return 0, false
	}
	return f.step, true
}

// checker applies the same rules the intake service enforces.
var checker = validator.New()

func textField(key FieldKey, label string, step Step, required bool, p func(*Draft) *string) field {
	return field{
		key: key, label: label, step: step, required: required,
		get:   func(d *Draft) string { return *p(d) },
		set:   func(d *Draft, v string) error { *p(d) = v; return nil },
		clear: func(d *Draft) { *p(d) = "" },
	}
}

func emailField(key FieldKey, label string, step Step, required bool, p func(*Draft) *string) field {
	f := textField(key, label, step, required, p)
	f.set = func(d *Draft, v string) error {
		v = strings.TrimSpace(v)
		if checker.Var(v, "email") != nil {
			return &FieldTypeError{Field: key, Value: v, Reason: "is not an email address"}
		}
		*p(d) = v
		return nil
	}
	return f
}

func urlField(key FieldKey, label string, step Step, required bool, p func(*Draft) *string) field {
	f := textField(key, label, step, required, p)
	f.set = func(d *Draft, v string) error {
		v = strings.TrimSpace(v)
		u, err := url.ParseRequestURI(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &FieldTypeError{Field: key, Value: v, Reason: "is not an http(s) URL"}
		}
		*p(d) = v
		return nil
	}
	return f
}

func dateField(key FieldKey, label string, step Step, required bool, p func(*Draft) *time.Time) field {
	return field{
		key: key, label: label, step: step, required: required,
		get: func(d *Draft) string {
			if p(d).IsZero() {
				return ""
			}
			return p(d).Format(models.DateLayout)
		},
		set: func(d *Draft, v string) error {
			t, err := time.Parse(models.DateLayout, strings.TrimSpace(v))
			if err != nil {
				return &FieldTypeError{Field: key, Value: v, Reason: "is not a YYYY-MM-DD date"}
			}
			*p(d) = t
			return nil
		},
		clear: func(d *Draft) { *p(d) = time.Time{} },
	}
}

func enumField[T ~string](key FieldKey, label string, step Step, required bool, vocabulary []T, p func(*Draft) *T) field {
	return field{
		key: key, label: label, step: step, required: required,
		get: func(d *Draft) string { return string(*p(d)) },
		set: func(d *Draft, v string) error {
			val := T(strings.TrimSpace(v))
			if !models.Known(val, vocabulary) {
				return &FieldTypeError{Field: key, Value: v, Reason: "is not one of the offered options"}
			}
			*p(d) = val
			return nil
		},
		clear: func(d *Draft) { *p(d) = "" },
	}
}

func salaryField(key FieldKey, label string, step Step, required bool) field {
	return field{
		key: key, label: label, step: step, required: required,
		get: func(d *Draft) string {
			if d.ExpectedSalary == nil {
				return ""
			}
			return strconv.FormatFloat(*d.ExpectedSalary, 'f', -1, 64)
		},
		set: func(d *Draft, v string) error {
			n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", ""), 64)
			if err != nil || n <= 0 {
				return &FieldTypeError{Field: key, Value: v, Reason: "is not a positive number"}
			}
			d.ExpectedSalary = &n
			return nil
		},
		clear: func(d *Draft) { d.ExpectedSalary = nil },
	}
}

func fileField(key FieldKey, label string, step Step, required bool, p func(*Draft) **Attachment) field {
	return field{
		key: key, label: label, step: step, required: required, kind: kindFile,
		get: func(d *Draft) string {
			a := *p(d)
			if a == nil || a.empty() {
				return ""
			}
			if a.Name == "" {
				return "attachment"
			}
			return a.Name
		},
		clear: func(d *Draft) { *p(d) = nil },
	}
}
