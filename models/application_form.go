package models

import "mime/multipart"

// ApplicationForm is the multipart body of POST /api/applications. Gin binds
// it through the form tags; the intake service validates the validate tags.
type ApplicationForm struct {
	FullNameEnglish string `form:"fullNameEnglish" validate:"required"`
	FullNameArabic  string `form:"fullNameArabic" validate:"required"`
	NationalID      string `form:"nationalId" validate:"required"`
	DateOfBirth     string `form:"dateOfBirth" validate:"required,datetime=2006-01-02"`

	MobileNumber   string `form:"mobileNumber" validate:"required"`
	WhatsappNumber string `form:"whatsappNumber" validate:"required"`
	EmailAddress   string `form:"emailAddress" validate:"required,email"`
	CurrentAddress string `form:"currentAddress" validate:"required"`

	PositionAppliedFor  string  `form:"positionAppliedFor" validate:"required,oneof=investment-analyst property-manager business-development finance-manager hr-specialist marketing-specialist operations-manager other"`
	YearsOfExperience   string  `form:"yearsOfExperience" validate:"required,oneof=0-1 2-3 4-5 6-10 10+"`
	CurrentLastPosition string  `form:"currentLastPosition" validate:"required"`
	ExpectedSalary      float64 `form:"expectedSalary" validate:"required,gt=0"`

	HighestEducationLevel string `form:"highestEducationLevel" validate:"required,oneof=high-school diploma bachelor master phd"`
	ArabicProficiency     string `form:"arabicProficiency" validate:"required,oneof=native fluent intermediate basic"`
	EnglishProficiency    string `form:"englishProficiency" validate:"required,oneof=native fluent intermediate basic"`
	KeySkills             string `form:"keySkills" validate:"required"`

	CV             *multipart.FileHeader   `form:"cvFile" validate:"required"`
	ProfilePicture *multipart.FileHeader   `form:"profilePicture" validate:"required"`
	Certifications []*multipart.FileHeader `form:"certificationsFiles"`

	Motivation     string `form:"whyJoinCPI" validate:"required"`
	NoticePeriod   string `form:"noticePeriod" validate:"omitempty,oneof=immediate 1-week 2-weeks 1-month 2-months 3-months"`
	IntroVideoLink string `form:"introVideoLink" validate:"omitempty,url"`

	InterviewSlotDate string `form:"interviewSlotDate" validate:"required,datetime=2006-01-02"`
	InterviewSlotTime string `form:"interviewSlotTime" validate:"required"`
	InterviewSlotID   string `form:"interviewSlotId" validate:"required"`
}
