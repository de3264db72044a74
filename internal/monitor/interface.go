package monitor

import (
	"context"

	"resolution-monitoring/internal/ledger"
)

//go:generate mockgen -typed -package=monitor -destination=./mocks.go -source=./interface.go

// ContractReader reads the contract state shown next to the voter lists.
type ContractReader interface {
	ResolutionCount(ctx context.Context) (uint64, error)
	Results(ctx context.Context, resolutionID uint64) (ledger.Tally, error)
}
