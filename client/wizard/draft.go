package wizard

import (
	"time"

	"cpicareers/models"
)

// Attachment is a file picked for an upload field.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

func (a Attachment) empty() bool { return len(a.Data) == 0 }

// Draft is the in-progress application. Zero values mean "not filled in".
type Draft struct {
	FullNameEnglish string
	FullNameArabic  string
	NationalID      string
	DateOfBirth     time.Time

	MobileNumber   string
	WhatsappNumber string
	EmailAddress   string
	CurrentAddress string

	PositionAppliedFor  models.Position
	YearsOfExperience   models.ExperienceRange
	CurrentLastPosition string
	ExpectedSalary      *float64

	HighestEducationLevel models.EducationLevel
	ArabicProficiency     models.LanguageLevel
	EnglishProficiency    models.LanguageLevel
	KeySkills             string

	CV             *Attachment
	ProfilePicture *Attachment
	Certifications []Attachment

	Motivation     string
	NoticePeriod   models.NoticePeriod
	IntroVideoLink string
}

// clone copies the draft so callers cannot reach the store's buffers.
func (d Draft) clone() Draft {
	out := d
	if d.ExpectedSalary != nil {
		v := *d.ExpectedSalary
		out.ExpectedSalary = &v
	}
	if d.CV != nil {
		cv := cloneAttachment(*d.CV)
		out.CV = &cv
	}
	if d.ProfilePicture != nil {
		pic := cloneAttachment(*d.ProfilePicture)
		out.ProfilePicture = &pic
	}
	if d.Certifications != nil {
		out.Certifications = make([]Attachment, len(d.Certifications))
		for i, a := range d.Certifications {
			out.Certifications[i] = cloneAttachment(a)
		}
	}
	return out
}

func cloneAttachment(a Attachment) Attachment {
	a.Data = append([]byte(nil), a.Data...)
	return a
}
