// Package metrics holds the domain counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkshelf"

// Login results.
const (
	LoginSuccess   = "success"
	LoginIncorrect = "incorrect"
	LoginNotSetUp  = "not_set_up"
	LoginEmpty     = "empty"
	LoginError     = "error"
)

// Gate kinds.
const (
	GateFolder = "folder"
	GateLink   = "link"
)

var (
	// Logins counts admin login attempts by result.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Admin login attempts, by result.",
	}, []string{"result"})

	// LinkChanges counts admin writes on links by operation.
	LinkChanges = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: namespace,
		Name:      "link_changes_total",
		Help:      "Links created, updated, deleted or approved.",
	}, []string{"op"})

	// SuggestionsSubmitted counts suggestions stored from the public form.
	SuggestionsSubmitted = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: namespace,
		Name:      "suggestions_submitted_total",
		Help:      "Suggestions submitted by visitors.",
	})

	// Unlocks counts password gate attempts by gate kind and outcome.
	Unlocks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: namespace,
		Name:      "gate_unlocks_total",
		Help:      "Folder and link password attempts, by gate and outcome.",
	}, []string{"gate", "ok"})
)

// Unlock records one password gate attempt.
func Unlock(gate string, ok bool) {
	outcome := "false"
	if ok {
		outcome = "true"
	}

	Unlocks.WithLabelValues(gate, outcome).Inc()
}
