package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Builder Metrics
var (
	BuilderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuilderFailures,
			Help: HelpTextBuilderFailures,
		},
		[]string{LabelOperation, LabelReason},
	)

	ItemsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBuilt,
			Help: HelpTextItemsBuilt,
		},
		[]string{LabelMetaKind},
	)
)

// Template Metrics
var (
	TemplatesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTemplatesLoaded,
			Help: HelpTextTemplatesLoaded,
		},
		[]string{LabelFormat},
	)

	TemplateBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTemplateBuildDuration,
			Help:    HelpTextTemplateBuildDuration,
			Buckets: TemplateBuildBuckets,
		},
	)
)

// RecordFailure counts a strict-mode builder failure
func RecordFailure(operation, reason string) {
	BuilderFailures.WithLabelValues(operation, reason).Inc()
}

// RecordBuilt counts a built stack
func RecordBuilt(metaKind string) {
	ItemsBuilt.WithLabelValues(metaKind).Inc()
}

// RecordTemplateLoaded counts a loaded template file by format
func RecordTemplateLoaded(format string) {
	TemplatesLoaded.WithLabelValues(format).Inc()
}
