package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"cpicareers/client/wizard"
	"cpicareers/models"

	"github.com/spf13/cobra"
)

func newSubmitCmd(a *app) *cobra.Command {
	var draftPath, date, clock string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an application and book an interview slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			s := a.session(w)

			if err := loadDraft(draftPath, s.Store); err != nil {
				return err
			}
			for s.Store.Step() <= wizard.LastDataStep {
				step := s.Store.Step()
				if err := s.Store.Advance(); err != nil {
					printErrors(w, step, s.Store.Errors())
					return err
				}
				fmt.Fprintf(w, "✔ %s\n", step)
			}

			day, err := time.ParseInLocation(models.DateLayout, date, a.cfg.Location())
			if err != nil {
				return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
			}
			if err := s.Calendar.Show(ctx, day.Year(), day.Month()); err != nil {
				return err
			}
			slot, ok := findSlot(s.Calendar, date, clock)
			if !ok {
				return fmt.Errorf("no interview slot at %s %s", date, clock)
			}
			if err := s.Selection.Select(date, slot); err != nil {
				return err
			}

			err = s.Orchestrator.Submit(ctx)
			var verr *wizard.ValidationError
			var berr *wizard.BookingError
			switch {
			case errors.As(err, &verr):
				for _, step := range verr.Steps {
					printErrors(w, step, verr.Errors)
				}
			case errors.As(err, &berr):
				fmt.Fprintf(w, "Your application %s was received but the interview is not booked.\n", berr.ApplicationID)
				fmt.Fprintln(w, "Run `apply slots` and contact HR with the application ID to schedule.")
			case err == nil:
				fmt.Fprintf(w, "Application %s submitted; interview on %s at %s.\n",
					s.Orchestrator.ApplicationID(), date, clock)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&draftPath, "draft", "draft.yaml", "draft document")
	cmd.Flags().StringVar(&date, "date", "", "interview date YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "interview time HH:MM")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func findSlot(cal *wizard.Calendar, date, clock string) (models.SlotView, bool) {
	month, _, _ := cal.Slots()
	for _, slot := range month[date] {
		if slot.Time == clock {
			return slot, true
		}
	}
	return models.SlotView{}, false
}

func printErrors(w io.Writer, step wizard.Step, errs wizard.ErrorSet) {
	for _, key := range wizard.Fields(step) {
		if msg, ok := errs[key]; ok {
			fmt.Fprintf(w, "✘ %s: %s\n", step, msg)
		}
	}
}
