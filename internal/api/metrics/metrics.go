// Package metrics defines and registers all custom Prometheus metrics for
// the account service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init and
// exposed through the echoprometheus handler mounted on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Registration / login metrics ──────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created" or "rejected" (validation failure)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Password reset metrics ────────────────────────────────────────────────────

// ResetRequestsTotal counts forgot-password requests.
// Label:
//   - result: "issued" or "unknown_email"
var ResetRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests, by result.",
	},
	[]string{"result"},
)

// ResetsCompletedTotal counts successful password resets (token consumed,
// password updated).
var ResetsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_completed_total",
		Help:      "Total number of successfully completed password resets.",
	},
)

// ResetTokensExpiredTotal counts reset tokens deleted on expiry detection.
var ResetTokensExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_tokens_expired_total",
		Help:      "Total number of reset tokens found expired at completion time.",
	},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// EmailsSentTotal counts delivery attempts made by the mail workers.
// Label:
//   - result: "ok" or "error"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of email delivery attempts, by result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the number of emails waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in each mail worker channel.",
	},
	[]string{"worker_id"},
)
