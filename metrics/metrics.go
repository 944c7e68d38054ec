package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badapples_moderation_actions_total",
	Help: "Number of records approved or rejected, by action and record type",
}, []string{"action", "kind"})

var DisputesFiled = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badapples_disputes_filed_total",
	Help: "Number of disputes filed, by dispute type",
}, []string{"type"})

var DisputesResolved = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badapples_disputes_resolved_total",
	Help: "Number of disputes closed, by final status",
}, []string{"status"})

var Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badapples_notifications_total",
	Help: "Number of outbox delivery attempts, by outcome",
}, []string{"status"})

var RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badapples_rate_limited_total",
	Help: "Number of requests rejected by the rate limiter, by route",
}, []string{"route"})
