// Package metrics defines the custom Prometheus collectors of the API.
// HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contactbook"

// Login results.
const (
	LoginSuccess       = "success"
	LoginEmailNotFound = "email_not_found"
	LoginBadPassword   = "bad_password"
)

// LoginAttemptsTotal counts login attempts by result.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResourcesCreatedTotal counts created users and contacts.
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of created resources, by kind.",
	},
	[]string{"kind"},
)
