package monitor

import (
	"resolution-monitoring/internal/metrics"
)

const subsystem = "monitor"

var (
	refreshDuration = metrics.NewHistogram(
		"refresh_duration_seconds",
		subsystem,
		"duration of one dashboard refresh",
		[]string{},
	).WithLabelValues()

	resolutionsWatched = metrics.NewGauge(
		"resolutions",
		subsystem,
		"number of resolutions shown",
		[]string{},
	).WithLabelValues()

	votesListed = metrics.NewGauge(
		"votes",
		subsystem,
		"number of voters listed per option and source",
		[]string{"vote_type", "source"},
	)

	votesArchived = metrics.NewCounter(
		"votes_archived",
		subsystem,
		"number of ledger votes written to the archive",
		[]string{},
	).WithLabelValues()
)
