package webex

import (
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webex_client",
			Name:      "requests_total",
			Help:      "Upstream API requests by endpoint path and status code.",
		},
		[]string{"endpoint", "status"},
	)

	cdrVariantAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webex_client",
			Name:      "cdr_variant_attempts_total",
			Help:      "CDR feed attempts by request variant name.",
		},
		[]string{"variant"},
	)

	cdrExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "webex_client",
			Name:      "cdr_variants_exhausted_total",
			Help:      "CDR fetches where every request variant was rejected.",
		},
	)
)

func observeRequest(endpoint string, resp *resty.Response, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode())
	}
	requestsTotal.WithLabelValues(endpoint, status).Inc()
}
