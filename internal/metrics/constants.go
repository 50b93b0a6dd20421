package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Builder metric names
const (
	MetricNameBuilderFailures = "item_builder_failures_total"
	MetricNameItemsBuilt      = "items_built_total"
)

// Template metric names
const (
	MetricNameTemplatesLoaded       = "item_templates_loaded_total"
	MetricNameTemplateBuildDuration = "item_template_build_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextBuilderFailures       = "Total number of builder operations that failed in strict mode"
	HelpTextItemsBuilt            = "Total number of stacks produced by Build"
	HelpTextTemplatesLoaded       = "Total number of template files loaded"
	HelpTextTemplateBuildDuration = "Time spent building every item of a template file in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelOperation = "operation"
	LabelReason    = "reason"
	LabelMetaKind  = "meta_kind"
	LabelFormat    = "format"
)

// ============================================================================
// Failure Reasons
// ============================================================================

const (
	ReasonInvalidArgument = "invalid_argument"
	ReasonWrongMetaKind   = "wrong_meta_kind"
	ReasonHostRejected    = "host_rejected"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// TemplateBuildBuckets range from 100µs to 1s; template files are small
// and build entirely in memory
var TemplateBuildBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}
