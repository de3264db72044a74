package roles

import (
	"resolution-monitoring/internal/metrics"
)

const subsystem = "roles"

var predicateFailures = metrics.NewCounter(
	"predicate_failures",
	subsystem,
	"number of role or whitelist predicate calls that failed",
	[]string{"predicate"},
)
