package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"cpicareers/client/careersapi"
	"cpicareers/client/wizard"
	"cpicareers/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg     *config.Config
	apiURL  string
	timeout time.Duration
	verbose bool
	logger  *zap.Logger
	client  *careersapi.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "apply",
		Short:         "Browse openings and apply for a position",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "careers API base URL (default API_BASE_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default REQUEST_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log API calls")

	root.AddCommand(newSlotsCmd(a), newJobsCmd(a), newSubmitCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.apiURL == "" {
		a.apiURL = cfg.APIBaseURL
	}
	if a.timeout <= 0 {
		a.timeout = cfg.RequestTimeout
	}

	a.logger = zap.NewNop()
	if a.verbose {
		if a.logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	a.client = careersapi.NewClient(a.apiURL, &http.Client{Timeout: a.timeout}, a.logger)
	return nil
}

func (a *app) session(out io.Writer) *wizard.Session {
	return wizard.NewSession(a.client, wizard.Options{
		Location: a.cfg.Location(),
		Timeout:  a.timeout,
		Notifier: printNotifier{out: out},
		Logger:   a.logger,
	})
}

// printNotifier writes wizard notices to the terminal.
type printNotifier struct {
	out io.Writer
}

func (p printNotifier) Success(msg string) { fmt.Fprintln(p.out, "✔", msg) }
func (p printNotifier) Error(msg string)   { fmt.Fprintln(p.out, "✘", msg) }
