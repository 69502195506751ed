package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Classification outcomes
	classifications      *prometheus.CounterVec
	classificationErrors *prometheus.CounterVec
	alerts               *prometheus.CounterVec

	// Evaluation runs
	evaluations        prometheus.Counter
	evaluationDuration prometheus.Histogram
	datasetEntities    *prometheus.GaugeVec
	paretoCoreItems    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "opsboard",
		subsystem:        "engine",
		histogramBuckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.classifications = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "classifications_total",
			Help:        "Total number of entities classified, by classifier and resulting label",
			ConstLabels: m.customLabels,
		},
		[]string{"classifier", "label"},
	)

	m.classificationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "classification_errors_total",
			Help:        "Total number of entities rejected by a classifier, by error kind",
			ConstLabels: m.customLabels,
		},
		[]string{"classifier", "kind"},
	)

	m.alerts = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "alerts_total",
			Help:        "Total number of alerts raised, by severity",
			ConstLabels: m.customLabels,
		},
		[]string{"severity"},
	)

	m.evaluations = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluations_total",
		Help:        "Total number of report evaluations completed",
		ConstLabels: m.customLabels,
	})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_duration_seconds",
		Help:        "Histogram of report evaluation duration in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	})

	m.datasetEntities = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "dataset_entities",
			Help:        "Number of entities in the last evaluated dataset, by section",
			ConstLabels: m.customLabels,
		},
		[]string{"section"},
	)

	m.paretoCoreItems = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "pareto_core_items",
		Help:        "Number of contributors making up the first 80% of revenue",
		ConstLabels: m.customLabels,
	})
}

// RecordClassification increments the classifier/label counter.
func (m *Manager) RecordClassification(classifier, label string) {
	m.classifications.WithLabelValues(classifier, label).Inc()
}

// RecordClassificationError increments the classifier/kind error counter.
func (m *Manager) RecordClassificationError(classifier, kind string) {
	m.classificationErrors.WithLabelValues(classifier, kind).Inc()
}

// RecordAlert increments the alert counter for severity.
func (m *Manager) RecordAlert(severity string) {
	m.alerts.WithLabelValues(severity).Inc()
}

// RecordEvaluation counts a finished evaluation and observes its duration.
func (m *Manager) RecordEvaluation(seconds float64) {
	m.evaluations.Inc()
	m.evaluationDuration.Observe(seconds)
}

// UpdateDatasetEntities sets the entity count for a dataset section.
func (m *Manager) UpdateDatasetEntities(section string, count int) {
	m.datasetEntities.WithLabelValues(section).Set(float64(count))
}

// UpdateParetoCoreItems sets the pareto core size.
func (m *Manager) UpdateParetoCoreItems(count int) {
	m.paretoCoreItems.Set(float64(count))
}

// RecordClassification increments the classifier/label counter.
func RecordClassification(classifier, label string) {
	globalManager.RecordClassification(classifier, label)
}

// RecordClassificationError increments the classifier/kind error counter.
func RecordClassificationError(classifier, kind string) {
	globalManager.RecordClassificationError(classifier, kind)
}

// RecordAlert increments the alert counter for severity.
func RecordAlert(severity string) {
	globalManager.RecordAlert(severity)
}

// RecordEvaluation counts a finished evaluation and observes its duration.
func RecordEvaluation(seconds float64) {
	globalManager.RecordEvaluation(seconds)
}

// UpdateDatasetEntities sets the entity count for a dataset section.
func UpdateDatasetEntities(section string, count int) {
	globalManager.UpdateDatasetEntities(section, count)
}

// UpdateParetoCoreItems sets the pareto core size.
func UpdateParetoCoreItems(count int) {
	globalManager.UpdateParetoCoreItems(count)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes every metric in g to path in the node_exporter
// textfile collector format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = customRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTextfile, path, err)
	}
	return nil
}
