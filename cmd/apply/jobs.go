package main

import (
	"fmt"
	"strings"

	"cpicareers/client/listings"

	"github.com/spf13/cobra"
)

func newJobsCmd(a *app) *cobra.Command {
	var (
		f    listings.Filter
		page int
	)
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List open positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			postings, err := a.client.JobPostings(cmd.Context())
			if err != nil {
				return err
			}
			result := listings.Paginate(listings.Apply(postings, f), page)
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "%d positions available\n", result.Total)
			if result.Total == 0 {
				fmt.Fprintln(w, "No positions match your current filters")
				return nil
			}
			for _, p := range result.Items {
				fmt.Fprintf(w, "\n%s  [%s, %s level]\n", p.Title, p.EmploymentType, p.ExperienceLevel)
				fmt.Fprintf(w, "  %s | %s\n", listings.FormatLocation(p), listings.FormatSalary(p.SalaryRange))
				fmt.Fprintf(w, "  %s\n", listings.Teaser(p))
				fmt.Fprintf(w, "  Posted %s", p.PostedAt.Format("2006-01-02"))
				if p.ApplicationDeadline != nil {
					fmt.Fprintf(w, ", apply by %s", p.ApplicationDeadline.Format("2006-01-02"))
				}
				fmt.Fprintln(w)
			}
			if result.TotalPages > 1 {
				pages := make([]string, len(result.Window))
				for i, n := range result.Window {
					if n == result.Number {
						pages[i] = fmt.Sprintf("[%d]", n)
					} else {
						pages[i] = fmt.Sprint(n)
					}
				}
				fmt.Fprintf(w, "\nPage %s of %d\n", strings.Join(pages, " "), result.TotalPages)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Search, "search", "", "search title and description")
	cmd.Flags().StringVar(&f.EmploymentType, "type", listings.All, "employment type")
	cmd.Flags().StringVar(&f.LocationType, "location", listings.All, "location type")
	cmd.Flags().StringVar(&f.ExperienceLevel, "level", listings.All, "experience level")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}
