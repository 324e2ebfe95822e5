package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SavedEntitiesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_entities_saved_total",
			Help: "Total number of entities stored, by kind.",
		},
		[]string{"entity"},
	)
	RemovedVacanciesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_vacancies_cleaned_total",
			Help: "Total number of expired hidden vacancies removed by the cleaner.",
		},
	)
	CleanupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_vacancies_cleanup_duration_seconds",
			Help:    "Duration of each vacancy cleanup pass in seconds.",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		},
	)
)

func StartMetricsServer() {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SavedEntitiesCounter)
	prometheus.MustRegister(RemovedVacanciesCounter)
	prometheus.MustRegister(CleanupDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
}
