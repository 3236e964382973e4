package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricInviteKeyCollision     = "invite_key.collision"
	MetricInviteKeyExhausted     = "invite_key.exhausted"
	MetricAuthorizationDenied    = "group.authorization_denied"
	MetricMembershipChanged      = "group.membership_changed"
	MetricTransactionCreated     = "transaction.created"
	MetricSharesRejected         = "transaction.shares_rejected"
	MetricRecurringExecuted      = "recurring.executed"
	MetricRecurringClaimLost     = "recurring.claim_lost"
	MetricRecurringDuration      = "recurring.execution"
	MetricRecurringSweepDuration = "recurring.sweep"
	MetricRecurringDue           = "recurring.due"
	MetricEventPublishFailed     = "event.publish_failed"
	MetricAuthenticationEvent    = "authentication_event"
)

type PrometheusMetrics struct {
	inviteKeyCollisions       prometheus.Counter
	inviteKeyExhausted        prometheus.Counter
	authorizationDenied       *prometheus.CounterVec
	membershipChanges         *prometheus.CounterVec
	transactionsCreated       *prometheus.CounterVec
	sharesRejected            prometheus.Counter
	recurringExecutions       *prometheus.CounterVec
	recurringDuration         prometheus.Histogram
	recurringSweepDuration    prometheus.Histogram
	recurringDue              prometheus.Gauge
	eventPublishFailures      *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the ledger collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		inviteKeyCollisions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "invite_key_collisions_total",
				Help: "Total number of generated invite keys that were already taken",
			},
		),
		inviteKeyExhausted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "invite_key_exhausted_total",
				Help: "Total number of invite key allocations that ran out of attempts",
			},
		),
		authorizationDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "group_authorization_denied_total",
				Help: "Total number of denied group actions",
			},
			[]string{"reason"},
		),
		membershipChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "group_membership_changes_total",
				Help: "Total number of membership changes",
			},
			[]string{"change"},
		),
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type", "source"},
		),
		sharesRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_shares_rejected_total",
				Help: "Total number of splits rejected for unbalanced shares",
			},
		),
		recurringExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_executions_total",
				Help: "Total number of recurring obligation executions",
			},
			[]string{"status"},
		),
		recurringDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recurring_execution_duration_milliseconds",
				Help:    "Recurring execution duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		recurringSweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recurring_sweep_duration_seconds",
				Help:    "Duration of one pass over all due obligations in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		recurringDue: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "recurring_due_obligations",
				Help: "Number of obligations found due in the last sweep",
			},
		),
		eventPublishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_publish_failures_total",
				Help: "Total number of ledger events that could not be published",
			},
			[]string{"event_type"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricInviteKeyCollision:
		m.inviteKeyCollisions.Inc()
	case MetricInviteKeyExhausted:
		m.inviteKeyExhausted.Inc()
	case MetricAuthorizationDenied:
		m.authorizationDenied.WithLabelValues(tags["reason"]).Inc()
	case MetricMembershipChanged:
		m.membershipChanges.WithLabelValues(tags["change"]).Inc()
	case MetricTransactionCreated:
		m.transactionsCreated.WithLabelValues(tags["type"], tags["source"]).Inc()
	case MetricSharesRejected:
		m.sharesRejected.Inc()
	case MetricRecurringExecuted:
		m.recurringExecutions.WithLabelValues("success").Inc()
	case MetricRecurringClaimLost:
		m.recurringExecutions.WithLabelValues("claim_lost").Inc()
	case MetricEventPublishFailed:
		m.eventPublishFailures.WithLabelValues(tags["event_type"]).Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRecurringDuration:
		m.recurringDuration.Observe(float64(duration.Milliseconds()))
	case MetricRecurringSweepDuration:
		m.recurringSweepDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricRecurringDue {
		m.recurringDue.Set(value)
	}
}

// NoopMetrics discards everything. Used by the CLI where nothing scrapes.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
