package roles

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -typed -package=roles -destination=./mocks.go -source=./interface.go

// RoleChecker answers the access-control predicates of the contract.
type RoleChecker interface {
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	IsWhitelisted(ctx context.Context, predicate string, account common.Address) (bool, error)
}
