package models

// Position is an open role an applicant can apply for.
type Position string

const (
	PositionInvestmentAnalyst   Position = "investment-analyst"
	PositionPropertyManager     Position = "property-manager"
	PositionBusinessDevelopment Position = "business-development"
	PositionFinanceManager      Position = "finance-manager"
	PositionHRSpecialist        Position = "hr-specialist"
	PositionMarketingSpecialist Position = "marketing-specialist"
	PositionOperationsManager   Position = "operations-manager"
	PositionOther               Position = "other"
)

// Positions lists the open roles in display order.
var Positions = []Position{
	PositionInvestmentAnalyst,
	PositionPropertyManager,
	PositionBusinessDevelopment,
	PositionFinanceManager,
	PositionHRSpecialist,
	PositionMarketingSpecialist,
	PositionOperationsManager,
	PositionOther,
}

// ExperienceRange buckets years of experience.
type ExperienceRange string

var ExperienceRanges = []ExperienceRange{"0-1", "2-3", "4-5", "6-10", "10+"}

// EducationLevel is the highest completed education.
type EducationLevel string

var EducationLevels = []EducationLevel{"high-school", "diploma", "bachelor", "master", "phd"}

// LanguageLevel is a self-assessed proficiency.
type LanguageLevel string

var LanguageLevels = []LanguageLevel{"native", "fluent", "intermediate", "basic"}

// NoticePeriod is how soon an employed applicant can start.
type NoticePeriod string

var NoticePeriods = []NoticePeriod{"immediate", "1-week", "2-weeks", "1-month", "2-months", "3-months"}

// Known reports whether v is one of the listed values.
func Known[T ~string](v T, vocabulary []T) bool {
	for _, item := range vocabulary {
		if item == v {
			return true
		}
	}
	return false
}
