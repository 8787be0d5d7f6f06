package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venue_tracker"

var (
	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "attempts_total",
		Help:      "Register and login attempts by outcome.",
	}, []string{"op", "outcome"})

	tokenRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "token_rejections_total",
		Help:      "Bearer tokens rejected by the access guard, by internal reason.",
	}, []string{"reason"})
)

func AuthAttempt(op, outcome string) {
	authAttempts.WithLabelValues(op, outcome).Inc()
}

func TokenRejected(reason string) {
	tokenRejections.WithLabelValues(reason).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
