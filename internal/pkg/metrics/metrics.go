// Package metrics defines the Prometheus collectors for the order tracking
// service. Collectors are registered on the default registry via promauto
// and exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordertrack"

var (
	// OrdersCreated counts successfully created orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	})

	// StatusTransitions counts accepted status transitions by edge.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of accepted order status transitions.",
	}, []string{"from", "to"})

	// VersionConflicts counts updates rejected by optimistic concurrency control.
	VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "version_conflicts_total",
		Help:      "Total number of updates rejected with a version conflict.",
	})

	// InvalidTransitions counts updates rejected by the lifecycle state machine.
	InvalidTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_transitions_total",
		Help:      "Total number of updates rejected as invalid status transitions.",
	})

	// OrdersByStatus reports the current number of orders per status.
	// Refreshed periodically by the status report job.
	OrdersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "orders_by_status",
		Help:      "Current number of orders per lifecycle status.",
	}, []string{"status"})
)
