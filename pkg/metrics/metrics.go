package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_records_total",
			Help: "Number of seed records processed",
		},
		[]string{"store", "outcome"}, // outcome: success|validation_failure|insert_failure
	)
	JobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seed_job_duration_seconds",
			Help:    "Wall time of one insertion job",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"store"},
	)
	JobsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "seed_jobs_in_flight",
			Help: "Number of insertion jobs still running",
		},
	)
	SinkFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_sink_failures_total",
			Help: "Number of reports a result sink failed to emit",
		},
		[]string{"sink"},
	)
	KafkaReportsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_reports_published_total",
			Help: "Number of job reports written to Kafka",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RecordsProcessed, JobDuration, JobsInFlight, SinkFailures, KafkaReportsPublished)
	})
}
