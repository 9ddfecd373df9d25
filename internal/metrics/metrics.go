// Package metrics defines all custom Prometheus metrics for the JobMatch API.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobmatch"

// ApplicationsSubmittedTotal counts applications successfully submitted.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications successfully submitted.",
	},
)

// ApplicationDecisionsTotal counts accept/reject decisions.
// Label:
//   - decision: "accepted" or "rejected"
var ApplicationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_decisions_total",
		Help:      "Total number of application decisions, by outcome.",
	},
	[]string{"decision"},
)

// AssistantRepliesTotal counts chatbot replies.
// Label:
//   - source: "backend" (text-generation API answered) or "canned" (fallback)
var AssistantRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_replies_total",
		Help:      "Total number of assistant replies served, by source.",
	},
	[]string{"source"},
)

// UploadsStoredTotal counts files accepted by the upload guard.
// Label:
//   - kind: "resume", "logo" or "resource_image"
var UploadsStoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded files stored, by kind.",
	},
	[]string{"kind"},
)
