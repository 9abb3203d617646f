// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_intent_requests_total",
			Help: "Total number of intent requests handled, by intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	IntentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_intent_duration_seconds",
			Help: "Duration of intent pipeline processing in seconds",
		},
		[]string{"intent"},
	)

	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_provider_requests_total",
			Help: "Total number of outbound provider calls, by provider and status",
		},
		[]string{"provider", "status"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_provider_duration_seconds",
			Help: "Duration of outbound provider calls in seconds",
		},
		[]string{"provider"},
	)
)
