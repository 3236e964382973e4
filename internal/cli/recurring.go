package cli

import (
	"fmt"
	"strings"
	"time"

	"group-ledger/internal/models"
	"group-ledger/internal/schedule"
	"group-ledger/internal/server"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newProcessRecurringCommand(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "process-recurring",
		Short: "Execute every due recurring obligation once",
		Long: `Runs one sweep over all groups, exactly like a tick of the API's
recurring processor. Obligations already claimed for their current period
are skipped, so running this next to the API is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now().UTC()
			if at != "" {
				t, err := parseTime(at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				now = t
			}

			return a.withServices(true, func(svc *server.Services) error {
				executed, err := svc.Recurring.ProcessDue(cmd.Context(), now)
				if err != nil {
					return fmt.Errorf("processing due obligations: %w", err)
				}
				return a.print(
					map[string]any{"executed": executed, "at": now},
					fmt.Sprintf("executed %d obligation(s) as of %s", executed, now.Format(time.RFC3339)),
				)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Evaluate due dates at this time (YYYY-MM-DD or RFC 3339) instead of now")
	return cmd
}

type occurrence struct {
	Frequency      models.Frequency `json:"frequency"`
	NextOccurrence *time.Time       `json:"nextOccurrence"`
	NextRun        *time.Time       `json:"nextRun"`
	IsDue          bool             `json:"isDue"`
}

func newNextOccurrenceCommand(a *app) *cobra.Command {
	var frequency, start, last, end, at string

	cmd := &cobra.Command{
		Use:   "next-occurrence",
		Short: "Compute when a recurring obligation runs next",
		Long: `Evaluates the recurring schedule without touching the database.
Monthly, quarterly and yearly periods use calendar arithmetic, so
2024-01-31 plus one month is 2024-03-02.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := models.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			o := &models.RecurringObligation{Frequency: freq, Active: true}
			if o.StartDate, err = parseTime(start); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if o.LastProcessedAt, err = parseOptionalTime(last); err != nil {
				return fmt.Errorf("--last: %w", err)
			}
			if o.EndDate, err = parseOptionalTime(end); err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			now := a.now().UTC()
			if at != "" {
				if now, err = parseTime(at); err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}

			result := occurrence{Frequency: freq, IsDue: schedule.IsDue(o, now)}
			if next, ok := schedule.NextOccurrence(o, now); ok {
				result.NextOccurrence = &next
			}
			if run, ok := schedule.NextRun(o, now); ok {
				result.NextRun = &run
			}

			if result.NextOccurrence == nil {
				return a.print(result, "no further occurrences")
			}
			return a.print(result,
				"next occurrence: "+result.NextOccurrence.Format(time.RFC3339),
				"next run:        "+result.NextRun.Format(time.RFC3339),
				fmt.Sprintf("due:             %t", result.IsDue),
			)
		},
	}
	cmd.Flags().StringVar(&frequency, "frequency", "", "daily, weekly, biweekly, monthly, quarterly or yearly")
	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().StringVar(&last, "last", "", "Last processed time")
	cmd.Flags().StringVar(&end, "end", "", "End date")
	cmd.Flags().StringVar(&at, "now", "", "Evaluate at this time instead of the current time")
	_ = cmd.MarkFlagRequired("frequency")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
