// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ContactSubmissionsTotal counts contact submissions by outcome.
// Label:
//   - outcome: "sent", "invalid", "rate_limited", "unconfigured", "send_failed"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact submissions, by outcome.",
	},
	[]string{"outcome"},
)

// ContactHandlerDuration measures the contact endpoint end-to-end, including
// validation, rate limiting, and provider dispatch.
var ContactHandlerDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "contact_handler_duration_seconds",
		Help:      "Duration of contact submission handling from bind to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ThemeSelectionsTotal counts effective theme changes.
// Label:
//   - theme: the adopted theme identifier (e.g. "ocean-blue")
var ThemeSelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "theme_selections_total",
		Help:      "Total number of effective theme changes, by theme.",
	},
	[]string{"theme"},
)
