// Package wallet talks to the wallet JSON-RPC endpoint that holds the user's accounts.
package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"resolution-monitoring/internal/ledger"
)

// Caller is the JSON-RPC surface of *rpc.Client used here and by the network selector.
type Caller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// Provider supplies the currently selected account, if there is one.
type Provider interface {
	SelectedAddress(ctx context.Context) (common.Address, bool)
}

// Wallet is a Provider backed by a wallet RPC endpoint.
type Wallet struct {
	rpc Caller
}

// New wraps an RPC connection. A nil caller means no wallet is available.
func New(rpc Caller) *Wallet {
	return &Wallet{rpc: rpc}
}

// Available reports whether a wallet endpoint is configured.
func (w *Wallet) Available() bool {
	return w != nil && w.rpc != nil
}

// RequestAccounts asks the wallet to expose its accounts and returns the first one.
func (w *Wallet) RequestAccounts(ctx context.Context) (common.Address, error) {
	if !w.Available() {
		return common.Address{}, errors.New("no wallet available")
	}
	var accounts []common.Address
	if err := w.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return common.Address{}, errors.Wrap(err, "eth_requestAccounts")
	}
	if len(accounts) == 0 {
		return common.Address{}, errors.New("wallet exposed no accounts")
	}
	return accounts[0], nil
}

// SelectedAddress returns the first account the wallet exposes.
func (w *Wallet) SelectedAddress(ctx context.Context) (common.Address, bool) {
	if !w.Available() {
		return common.Address{}, false
	}
	var accounts []common.Address
	if err := w.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil || len(accounts) == 0 {
		return common.Address{}, false
	}
	return accounts[0], true
}

// ChainID returns the chain the wallet is currently on.
func (w *Wallet) ChainID(ctx context.Context) (uint64, error) {
	if !w.Available() {
		return 0, errors.New("no wallet available")
	}
	var id hexutil.Uint64
	if err := w.rpc.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, errors.Wrap(err, "eth_chainId")
	}
	return uint64(id), nil
}

// Static is a Provider with a fixed, possibly empty, selection.
type Static struct {
	addr common.Address
	ok   bool
}

// NewStatic parses addr; an empty or invalid address yields no selection.
func NewStatic(addr string) Static {
	a, ok := ledger.ParseAddress(addr)
	return Static{addr: a, ok: ok}
}

func (s Static) SelectedAddress(context.Context) (common.Address, bool) {
	return s.addr, s.ok
}
