package reconcile

import (
	"context"

	"resolution-monitoring/internal/ledger"
)

//go:generate mockgen -typed -package=reconcile -destination=./mocks.go -source=./interface.go

// VoteEventSource answers historical vote event queries.
type VoteEventSource interface {
	QueryVoteEvents(ctx context.Context, resolutionID uint64) ([]ledger.VoteEvent, error)
}
