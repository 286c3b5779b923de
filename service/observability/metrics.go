package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "silver_walks", Name: "match_queries_total", Help: "Total availability match queries"})

	WalkTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "silver_walks", Name: "walk_transitions_total", Help: "Walk session transitions by outcome"},
		[]string{"transition", "outcome"},
	)

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "silver_walks", Name: "notification_failures_total", Help: "Notification dispatch failures (logged, never propagated)"})
)
