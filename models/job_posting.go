package models

import "time"

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

type LocationType string

const (
	LocationOnsite LocationType = "onsite"
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

type JobLocation struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type SalaryRange struct {
	Min      float64 `bson:"min" json:"min"`
	Max      float64 `bson:"max" json:"max"`
	Currency string  `bson:"currency" json:"currency"`
	IsPublic bool    `bson:"isPublic" json:"isPublic"`
}

// JobPosting is an open position published on the careers page.
type JobPosting struct {
	ID                  string          `bson:"id" json:"_id"`
	Title               string          `bson:"title" json:"title" binding:"required"`
	Description         string          `bson:"description" json:"description" binding:"required"`
	ShortDescription    string          `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Responsibilities    []string        `bson:"responsibilities" json:"responsibilities"`
	Requirements        []string        `bson:"requirements" json:"requirements"`
	Benefits            []string        `bson:"benefits,omitempty" json:"benefits,omitempty"`
	EmploymentType      EmploymentType  `bson:"employmentType" json:"employmentType" binding:"required,oneof=full-time part-time contract internship"`
	LocationType        LocationType    `bson:"locationType" json:"locationType" binding:"required,oneof=onsite remote hybrid"`
	Location            JobLocation     `bson:"location" json:"location"`
	ExperienceLevel     ExperienceLevel `bson:"experienceLevel" json:"experienceLevel" binding:"required,oneof=entry mid senior executive"`
	SalaryRange         *SalaryRange    `bson:"salaryRange,omitempty" json:"salaryRange,omitempty"`
	Department          string          `bson:"department,omitempty" json:"department,omitempty"`
	ApplicationLink     string          `bson:"applicationLink,omitempty" json:"applicationLink,omitempty" binding:"omitempty,url"`
	ApplicationEmail    string          `bson:"applicationEmail,omitempty" json:"applicationEmail,omitempty" binding:"omitempty,email"`
	ApplicationDeadline *time.Time      `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	IsActive            bool            `bson:"isActive" json:"isActive"`
	PostedAt            time.Time       `bson:"postedAt" json:"postedAt"`
}
