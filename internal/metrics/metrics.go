package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Item Metrics
var (
	ItemsPatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsPatched,
			Help:      HelpTextItemsPatched,
		},
	)

	ItemsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsFailed,
			Help:      HelpTextItemsFailed,
		},
		[]string{LabelReason},
	)

	FragmentsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameFragmentsLoaded,
			Help:      HelpTextFragmentsLoaded,
		},
	)
)

// Step Metrics
var (
	StepMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStepMutations,
			Help:      HelpTextStepMutations,
		},
		[]string{LabelStep},
	)

	StepWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStepWarnings,
			Help:      HelpTextStepWarnings,
		},
		[]string{LabelStep},
	)

	QuestsPatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameQuestsPatched,
			Help:      HelpTextQuestsPatched,
		},
	)
)

// Batch Metrics
var (
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameBatchDuration,
			Help:      HelpTextBatchDuration,
			Buckets:   BatchDurationBuckets,
		},
	)
)
