// Package schedule computes when recurring obligations fall due. The current
// time is always passed in by the caller.
package schedule

import (
	"time"

	"group-ledger/internal/models"
)

// advanceFunc moves an anchor date forward by one period.
type advanceFunc func(anchor time.Time) time.Time

// periods maps each frequency to its step. Months and years rely on
// time.AddDate normalization, so 2024-01-31 plus one month is 2024-03-02.
var periods = map[models.Frequency]advanceFunc{
	models.FrequencyDaily:     func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
	models.FrequencyWeekly:    func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	models.FrequencyBiweekly:  func(t time.Time) time.Time { return t.AddDate(0, 0, 14) },
	models.FrequencyMonthly:   func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
	models.FrequencyQuarterly: func(t time.Time) time.Time { return t.AddDate(0, 3, 0) },
	models.FrequencyYearly:    func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
}

// Advance returns anchor moved forward by one period of freq.
func Advance(freq models.Frequency, anchor time.Time) (time.Time, bool) {
	step, ok := periods[freq]
	if !ok {
		return time.Time{}, false
	}
	return step(anchor), true
}

// Anchor is the date the next period is counted from: the last execution, or
// the start date when the obligation never ran.
func Anchor(o *models.RecurringObligation) time.Time {
	if o.LastProcessedAt != nil {
		return *o.LastProcessedAt
	}
	return o.StartDate
}

// Expired reports whether the obligation's end date lies before now.
func Expired(o *models.RecurringObligation, now time.Time) bool {
	return o.EndDate != nil && o.EndDate.Before(now)
}

// NextOccurrence returns the scheduled date of the next execution. The second
// result is false when the obligation is inactive, expired or has an unknown
// frequency. The returned date may lie in the past; see NextRun.
func NextOccurrence(o *models.RecurringObligation, now time.Time) (time.Time, bool) {
	if o == nil || !o.Active || Expired(o, now) {
		return time.Time{}, false
	}
	return Advance(o.Frequency, Anchor(o))
}

// NextRun is NextOccurrence clamped to now: an overdue occurrence runs
// immediately.
func NextRun(o *models.RecurringObligation, now time.Time) (time.Time, bool) {
	next, ok := NextOccurrence(o, now)
	if !ok {
		return time.Time{}, false
	}
	if next.Before(now) {
		return now, true
	}
	return next, true
}

// IsDue reports whether the next occurrence exists and is not after now.
func IsDue(o *models.RecurringObligation, now time.Time) bool {
	next, ok := NextOccurrence(o, now)
	return ok && !next.After(now)
}

// MarkExecuted records now as the last execution. Callers persist the change.
func MarkExecuted(o *models.RecurringObligation, now time.Time) {
	executed := now
	o.LastProcessedAt = &executed
}
