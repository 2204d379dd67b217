package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapcommand_quotes_created_total",
			Help: "Quotes persisted, by origin",
		},
		[]string{"origin"},
	)

	DraftsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapcommand_quote_drafts_created_total",
			Help: "Quote drafts persisted, by the source agent's execution scope",
		},
		[]string{"scope"},
	)

	GateDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapcommand_gate_decisions_total",
			Help: "Execution gate outcomes",
		},
		[]string{"action", "scope", "proceed"},
	)

	SizeResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapcommand_vehicle_size_resolutions_total",
			Help: "Vehicle size resolutions by source",
		},
		[]string{"source"},
	)

	EmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wrapcommand_quote_emails_sent_total",
			Help: "Quote emails accepted by the mail provider",
		},
	)

	EmailsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wrapcommand_quote_emails_failed_total",
			Help: "Quote emails the mail provider rejected",
		},
	)

	BestEffortFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapcommand_best_effort_failures_total",
			Help: "Swallowed failures of non-critical steps",
		},
		[]string{"step"},
	)
)
