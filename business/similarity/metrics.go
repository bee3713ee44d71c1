package similarity

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	SourceBuild    = "build"
	SourceSnapshot = "snapshot"
	SourceMemory   = "memory"
)

var (
	ModelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "similarity_model_builds_total",
			Help: "Similarity models handed out, by where they came from (build, snapshot, memory).",
		},
		[]string{"source"},
	)

	ModelBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "similarity_model_build_seconds",
		Help:    "Time spent fitting TF-IDF and computing the similarity matrix.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(ModelLoadsTotal, ModelBuildSeconds)
}
