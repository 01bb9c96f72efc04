// Package metrics defines and registers all custom Prometheus metrics for
// the listings API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "imoveis"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts created accounts by role.
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// RealEstateWritesTotal counts listing mutations.
// Label:
//   - op: "create", "update" or "delete"
var RealEstateWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "real_estate_writes_total",
		Help:      "Total number of listing mutations, by operation.",
	},
	[]string{"op"},
)

// SearchesTotal counts advanced listing searches.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of advanced listing searches.",
	},
)
