package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// RecordMutations adds n mutations to a step's counter. Zero is ignored.
func RecordMutations(step string, n int) {
	if n <= 0 {
		return
	}
	StepMutations.WithLabelValues(step).Add(float64(n))
}

// RecordWarning counts one reported-and-continue condition.
func RecordWarning(step string) {
	StepWarnings.WithLabelValues(step).Inc()
}

// RecordItemFailed counts an aborted item, labelled by the sentinel it wraps.
func RecordItemFailed(err error) {
	ItemsFailed.WithLabelValues(FailureReason(err)).Inc()
}

// FailureReason maps an item error to its metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return ReasonTemplateNotFound
	case errors.Is(err, domain.ErrInvalidCurrency):
		return ReasonInvalidCurrency
	default:
		return ReasonOther
	}
}

// ObserveBatch records the duration since start.
func ObserveBatch(start time.Time) {
	BatchDuration.Observe(time.Since(start).Seconds())
}

// WriteTextfile dumps every registered metric in the text exposition
// format, for pickup by a textfile collector.
func WriteTextfile(ctx context.Context, path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgMetricsWritten, "path", path)
	return nil
}
