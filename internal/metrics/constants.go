package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Metric namespace shared by every patcher metric
const Namespace = "armory"

// Patch metric names
const (
	MetricNameItemsPatched    = "items_patched_total"
	MetricNameItemsFailed     = "items_failed_total"
	MetricNameStepMutations   = "step_mutations_total"
	MetricNameStepWarnings    = "step_warnings_total"
	MetricNameQuestsPatched   = "quests_patched_total"
	MetricNameBatchDuration   = "batch_duration_seconds"
	MetricNameFragmentsLoaded = "fragments_loaded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsPatched    = "Total number of custom items fully patched into the database"
	HelpTextItemsFailed     = "Total number of custom items whose processing was aborted"
	HelpTextStepMutations   = "Total number of database mutations performed per patch step"
	HelpTextStepWarnings    = "Total number of reported-and-continue conditions per patch step"
	HelpTextQuestsPatched   = "Total number of quests whose weapon list was extended"
	HelpTextBatchDuration   = "Duration of a full patch batch in seconds"
	HelpTextFragmentsLoaded = "Total number of item fragment files loaded"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelStep   = "step"
	LabelReason = "reason"
)

// Failure reasons
const (
	ReasonTemplateNotFound = "template_not_found"
	ReasonInvalidCurrency  = "invalid_currency"
	ReasonOther            = "other"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// BatchDurationBuckets spans 1ms to 10s
var BatchDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsWritten = "Metrics written"
)
