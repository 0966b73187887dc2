package models

import "time"

// Multipart part names shared by the applicant client and the intake API.
const (
	FieldFullNameEnglish       = "fullNameEnglish"
	FieldFullNameArabic        = "fullNameArabic"
	FieldNationalID            = "nationalId"
	FieldDateOfBirth           = "dateOfBirth"
	FieldMobileNumber          = "mobileNumber"
	FieldWhatsappNumber        = "whatsappNumber"
	FieldEmailAddress          = "emailAddress"
	FieldCurrentAddress        = "currentAddress"
	FieldPositionAppliedFor    = "positionAppliedFor"
	FieldYearsOfExperience     = "yearsOfExperience"
	FieldCurrentLastPosition   = "currentLastPosition"
	FieldExpectedSalary        = "expectedSalary"
	FieldHighestEducationLevel = "highestEducationLevel"
	FieldArabicProficiency     = "arabicProficiency"
	FieldEnglishProficiency    = "englishProficiency"
	FieldKeySkills             = "keySkills"
	FieldCV                    = "cvFile"
	FieldProfilePicture        = "profilePicture"
	FieldCertifications        = "certificationsFiles"
	FieldMotivation            = "whyJoinCPI"
	FieldNoticePeriod          = "noticePeriod"
	FieldIntroVideoLink        = "introVideoLink"

	FieldInterviewSlotDate = "interviewSlotDate"
	FieldInterviewSlotTime = "interviewSlotTime"
	FieldInterviewSlotID   = "interviewSlotId"
)

// ApplicationStatus tracks an intake record through scheduling.
type ApplicationStatus string

const (
	// ApplicationReceived: intake stored, booking not yet confirmed.
	ApplicationReceived ApplicationStatus = "received"
	// ApplicationScheduled: the interview slot is booked for this applicant.
	ApplicationScheduled ApplicationStatus = "scheduled"
	// ApplicationOrphaned: intake succeeded but no booking followed.
	ApplicationOrphaned ApplicationStatus = "orphaned"
)

// StoredFile describes an uploaded attachment.
type StoredFile struct {
	PublicID     string `bson:"publicId" json:"publicId"`
	URL          string `bson:"url" json:"url"`
	ResourceType string `bson:"resourceType" json:"resourceType"`
	FileName     string `bson:"fileName" json:"fileName"`
	ContentType  string `bson:"contentType" json:"contentType"`
	Size         int64  `bson:"size" json:"size"`
}

// Application is a received job application.
type Application struct {
	ID     string            `bson:"id" json:"id"`
	Status ApplicationStatus `bson:"status" json:"status"`

	FullNameEnglish string `bson:"fullNameEnglish" json:"fullNameEnglish"`
	FullNameArabic  string `bson:"fullNameArabic" json:"fullNameArabic"`
	NationalID      string `bson:"nationalId" json:"nationalId"`
	DateOfBirth     string `bson:"dateOfBirth" json:"dateOfBirth"`

	MobileNumber   string `bson:"mobileNumber" json:"mobileNumber"`
	WhatsappNumber string `bson:"whatsappNumber" json:"whatsappNumber"`
	EmailAddress   string `bson:"emailAddress" json:"emailAddress"`
	CurrentAddress string `bson:"currentAddress" json:"currentAddress"`

	PositionAppliedFor  Position        `bson:"positionAppliedFor" json:"positionAppliedFor"`
	YearsOfExperience   ExperienceRange `bson:"yearsOfExperience" json:"yearsOfExperience"`
	CurrentLastPosition string          `bson:"currentLastPosition" json:"currentLastPosition"`
	ExpectedSalary      float64         `bson:"expectedSalary" json:"expectedSalary"`

	HighestEducationLevel EducationLevel `bson:"highestEducationLevel" json:"highestEducationLevel"`
	ArabicProficiency     LanguageLevel  `bson:"arabicProficiency" json:"arabicProficiency"`
	EnglishProficiency    LanguageLevel  `bson:"englishProficiency" json:"englishProficiency"`
	KeySkills             string         `bson:"keySkills" json:"keySkills"`

	CV             StoredFile   `bson:"cv" json:"cv"`
	ProfilePicture StoredFile   `bson:"profilePicture" json:"profilePicture"`
	Certifications []StoredFile `bson:"certifications,omitempty" json:"certifications,omitempty"`

	Motivation     string       `bson:"motivation" json:"motivation"`
	NoticePeriod   NoticePeriod `bson:"noticePeriod,omitempty" json:"noticePeriod,omitempty"`
	IntroVideoLink string       `bson:"introVideoLink,omitempty" json:"introVideoLink,omitempty"`

	InterviewSlotID   string `bson:"interviewSlotId" json:"interviewSlotId"`
	InterviewSlotDate string `bson:"interviewSlotDate" json:"interviewSlotDate"`
	InterviewSlotTime string `bson:"interviewSlotTime" json:"interviewSlotTime"`

	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	ScheduledAt  *time.Time `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	ReconciledAt *time.Time `bson:"reconciledAt,omitempty" json:"reconciledAt,omitempty"`
}

// IntakeResponse is returned by POST /api/applications.
type IntakeResponse struct {
	ID     string            `json:"id"`
	Status ApplicationStatus `json:"status"`
}
