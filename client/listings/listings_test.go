package listings

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"cpicareers/models"
)

func posting(title string, et models.EmploymentType, lt models.LocationType, lvl models.ExperienceLevel) models.JobPosting {
	return models.JobPosting{
		Title:           title,
		Description:     title + " role at our Cairo office",
		EmploymentType:  et,
		LocationType:    lt,
		ExperienceLevel: lvl,
	}
}

func titles(ps []models.JobPosting) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestApply(t *testing.T) {
	all := []models.JobPosting{
		posting("Sales Manager", models.EmploymentFullTime, models.LocationOnsite, models.LevelSenior),
		posting("Marketing Intern", models.EmploymentInternship, models.LocationHybrid, models.LevelEntry),
		posting("Data Analyst", models.EmploymentFullTime, models.LocationRemote, models.LevelMid),
	}
	all[2].Description = "Build SALES dashboards"

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"Sales Manager", "Marketing Intern", "Data Analyst"}},
		{"all sentinel", Filter{EmploymentType: All, LocationType: All, ExperienceLevel: All}, []string{"Sales Manager", "Marketing Intern", "Data Analyst"}},
		{"search title and description", Filter{Search: " sales "}, []string{"Sales Manager", "Data Analyst"}},
		{"employment type", Filter{EmploymentType: "full-time"}, []string{"Sales Manager", "Data Analyst"}},
		{"combined", Filter{Search: "sales", LocationType: "remote"}, []string{"Data Analyst"}},
		{"level", Filter{ExperienceLevel: "entry"}, []string{"Marketing Intern"}},
		{"no match", Filter{LocationType: "onsite", ExperienceLevel: "entry"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titles(Apply(all, tt.filter)); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	var ps []models.JobPosting
	for i := 1; i <= 14; i++ {
		ps = append(ps, models.JobPosting{Title: fmt.Sprintf("job-%d", i)})
	}

	p := Paginate(ps, 1)
	if p.TotalPages != 3 || p.Total != 14 || len(p.Items) != 6 || p.Items[0].Title != "job-1" {
		t.Fatalf("unexpected first page %+v", p)
	}
	p = Paginate(ps, 3)
	if len(p.Items) != 2 || p.Items[1].Title != "job-14" {
		t.Fatalf("unexpected last page %v", titles(p.Items))
	}
	if p = Paginate(ps, 99); p.Number != 3 {
		t.Fatalf("page should clamp to 3, got %d", p.Number)
	}
	if p = Paginate(ps, -1); p.Number != 1 {
		t.Fatalf("page should clamp to 1, got %d", p.Number)
	}
	if p = Paginate(nil, 2); p.Number != 1 || p.TotalPages != 0 || len(p.Items) != 0 || len(p.Window) != 0 {
		t.Fatalf("unexpected empty page %+v", p)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		current, pages int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		if got := window(tt.current, tt.pages); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("window(%d, %d) = %v, want %v", tt.current, tt.pages, got, tt.want)
		}
	}
}

func TestFormatSalary(t *testing.T) {
	if got := FormatSalary(nil); got != "Salary information available upon application" {
		t.Fatalf("nil range: %q", got)
	}
	hidden := &models.SalaryRange{Min: 1, Max: 2, Currency: "EGP"}
	if got := FormatSalary(hidden); got != "Salary information available upon application" {
		t.Fatalf("private range: %q", got)
	}
	public := &models.SalaryRange{Min: 15000, Max: 1250000.5, Currency: "EGP", IsPublic: true}
	if got := FormatSalary(public); got != "15,000 - 1,250,000.5 EGP" {
		t.Fatalf("public range: %q", got)
	}
}

func TestFormatLocation(t *testing.T) {
	remote := models.JobPosting{LocationType: models.LocationRemote, Location: models.JobLocation{City: "Cairo"}}
	if got := FormatLocation(remote); got != "Remote" {
		t.Fatalf("remote: %q", got)
	}
	onsite := models.JobPosting{LocationType: models.LocationOnsite, Location: models.JobLocation{City: "Cairo", Country: "Egypt"}}
	if got := FormatLocation(onsite); got != "Cairo, Egypt" {
		t.Fatalf("onsite: %q", got)
	}
	cityOnly := models.JobPosting{LocationType: models.LocationHybrid, Location: models.JobLocation{City: "Giza"}}
	if got := FormatLocation(cityOnly); got != "Giza" {
		t.Fatalf("city only: %q", got)
	}
}

func TestTeaser(t *testing.T) {
	short := models.JobPosting{ShortDescription: "Lead our sales team", Description: strings.Repeat("x", 300)}
	if got := Teaser(short); got != "Lead our sales team" {
		t.Fatalf("short description not preferred: %q", got)
	}
	long := models.JobPosting{Description: strings.Repeat("é", 200)}
	if got := Teaser(long); got != strings.Repeat("é", 150)+"..." {
		t.Fatalf("long description not truncated on runes: %q", got)
	}
	exact := models.JobPosting{Description: strings.Repeat("a", 150)}
	if got := Teaser(exact); got != exact.Description {
		t.Fatalf("150 characters should not be truncated")
	}
}
