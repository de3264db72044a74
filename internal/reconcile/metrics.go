package reconcile

import (
	"resolution-monitoring/internal/metrics"
)

const subsystem = "reconcile"

var (
	fallbacks = metrics.NewCounter(
		"fallbacks",
		subsystem,
		"number of vote queries answered with synthetic data",
		[]string{"reason"},
	)
	fallbackDemo       = fallbacks.WithLabelValues("demo")
	fallbackQueryError = fallbacks.WithLabelValues("query_error")

	gapFills = metrics.NewCounter(
		"gap_fills",
		subsystem,
		"number of session votes shown before the ledger observed them",
		[]string{"stage"},
	)
	gapFillFetch = gapFills.WithLabelValues("fetch")
	gapFillGroup = gapFills.WithLabelValues("group")
)
