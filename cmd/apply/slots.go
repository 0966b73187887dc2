package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cpicareers/client/wizard"

	"github.com/spf13/cobra"
)

func newSlotsCmd(a *app) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show interview slots for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.session(cmd.ErrOrStderr())
			if month == "" {
				if err := s.Calendar.Load(cmd.Context()); err != nil {
					return err
				}
			} else {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("--month must be YYYY-MM: %w", err)
				}
				if err := s.Calendar.Show(cmd.Context(), t.Year(), t.Month()); err != nil {
					return err
				}
			}
			printMonth(cmd.OutOrStdout(), s.Calendar)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default current month)")
	return cmd
}

func printMonth(w io.Writer, cal *wizard.Calendar) {
	year, month := cal.Month()
	sum := cal.Summary()
	fmt.Fprintf(w, "%s %d: %d slots (%d open, %d pending, %d booked)\n",
		month, year, sum.Total, sum.Open, sum.Pending, sum.Booked)

	for _, day := range cal.Days() {
		if !day.InMonth || len(day.Cells) == 0 {
			continue
		}
		marker := ""
		if day.Today {
			marker = " (today)"
		}
		cells := make([]string, len(day.Cells))
		for i, c := range day.Cells {
			if c.Disabled {
				cells[i] = fmt.Sprintf("%s [%s]", c.Slot.Time, c.Reason)
			} else {
				cells[i] = c.Slot.Time
			}
		}
		fmt.Fprintf(w, "  %s %s%s: %s\n", day.Date.Format("Mon"), day.ISO, marker, strings.Join(cells, ", "))
	}
}
