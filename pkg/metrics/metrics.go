package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "medvoice", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "medvoice", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "medvoice", Name: "store_reads_total", Help: "Number of whole-snapshot reads by store backend."},
		[]string{"backend"},
	)
	StoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "medvoice", Name: "store_writes_total", Help: "Number of whole-snapshot writes by store backend."},
		[]string{"backend"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreReads)
	reg.MustRegister(StoreWrites)
}
