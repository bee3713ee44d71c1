package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Count of more-games recommendation requests by user state.",
		},
		[]string{"user_state"},
	)
)

func init() {
	prometheus.MustRegister(RecommendRequestsTotal)
}
