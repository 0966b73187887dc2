// Package listings filters, searches and pages the published job postings.
package listings

import (
	"strconv"
	"strings"

	"cpicareers/models"
)

const (
	PageSize   = 6
	pageWindow = 5
	// All disables a filter.
	All = "all"
)

type Filter struct {
	Search          string
	EmploymentType  string
	LocationType    string
	ExperienceLevel string
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}

// Apply returns the postings matching f in their original order. Search is a
// case-insensitive substring match on title and description.
func Apply(postings []models.JobPosting, f Filter) []models.JobPosting {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.JobPosting, 0, len(postings))
	for _, p := range postings {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if !matches(f.EmploymentType, string(p.EmploymentType)) ||
			!matches(f.LocationType, string(p.LocationType)) ||
			!matches(f.ExperienceLevel, string(p.ExperienceLevel)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Page is one page of results.
type Page struct {
	Items      []models.JobPosting
	Number     int
	TotalPages int
	Total      int
	// Window holds up to five page numbers around Number.
	Window []int
}

// Paginate returns page number (1-based, clamped to the valid range).
func Paginate(postings []models.JobPosting, number int) Page {
	total := len(postings)
	pages := (total + PageSize - 1) / PageSize
	if number > pages {
		number = pages
	}
	if number < 1 {
		number = 1
	}
	p := Page{Number: number, TotalPages: pages, Total: total, Window: window(number, pages)}
	if total == 0 {
		return p
	}
	start := (number - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	p.Items = postings[start:end]
	return p
}

func window(current, pages int) []int {
	n := pages
	if n > pageWindow {
		n = pageWindow
	}
	var first int
	switch {
	case pages <= pageWindow || current <= 3:
		first = 1
	case current >= pages-2:
		first = pages - pageWindow + 1
	default:
		first = current - 2
	}
	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}

// FormatSalary renders a public salary range, e.g. "15,000 - 25,000 EGP".
func FormatSalary(r *models.SalaryRange) string {
	if r == nil || !r.IsPublic {
		return "Salary information available upon application"
	}
	return groupThousands(r.Min) + " - " + groupThousands(r.Max) + " " + r.Currency
}

// FormatLocation renders "Remote" or "City, Country".
func FormatLocation(p models.JobPosting) string {
	if p.LocationType == models.LocationRemote {
		return "Remote"
	}
	parts := make([]string, 0, 2)
	if p.Location.City != "" {
		parts = append(parts, p.Location.City)
	}
	if p.Location.Country != "" {
		parts = append(parts, p.Location.Country)
	}
	return strings.Join(parts, ", ")
}

// Teaser returns the short description, or the first 150 characters of the
// description.
func Teaser(p models.JobPosting) string {
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	r := []rune(p.Description)
	if len(r) <= 150 {
		return p.Description
	}
	return string(r[:150]) + "..."
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + frac
	}
	return out
}
