// Package network knows the supported ledgers and asks the wallet to move between them.
package network

import (
	"context"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"resolution-monitoring/internal/logger"
	"resolution-monitoring/internal/wallet"
)

// Wallet error code for a chain the wallet does not know yet.
const codeUnrecognizedChain = 4902

var (
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrWalletUnavailable = errors.New("wallet unavailable")
	ErrUnrecognizedChain = errors.New("chain not configured in wallet")
)

// Currency describes a chain's native currency for wallet_addEthereumChain.
type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// AddChainParams is the wallet_addEthereumChain payload.
type AddChainParams struct {
	ChainID           string   `json:"chainId"`
	ChainName         string   `json:"chainName"`
	NativeCurrency    Currency `json:"nativeCurrency"`
	RPCURLs           []string `json:"rpcUrls"`
	BlockExplorerURLs []string `json:"blockExplorerUrls"`
}

// Network is one supported ledger.
type Network struct {
	Key        string
	Name       string
	ChainID    uint64
	RPCURL     string
	ConfigFile string
	// Demo networks show synthetic vote data instead of querying the ledger.
	Demo     bool
	AddChain *AddChainParams
}

// Networks lists the supported ledgers by key.
var Networks = map[string]Network{
	"hardhat": {
		Key:        "hardhat",
		Name:       "Hardhat",
		ChainID:    31337,
		RPCURL:     "http://127.0.0.1:8545",
		ConfigFile: "contract-config.json",
	},
	"sepolia": {
		Key:        "sepolia",
		Name:       "Sepolia",
		ChainID:    11155111,
		RPCURL:     "https://sepolia.infura.io/v3/",
		ConfigFile: "contract-config-sepolia.json",
		Demo:       true,
		AddChain: &AddChainParams{
			ChainID:           hexutil.EncodeUint64(11155111),
			ChainName:         "Sepolia Test Network",
			NativeCurrency:    Currency{Name: "Sepolia ETH", Symbol: "ETH", Decimals: 18},
			RPCURLs:           []string{"https://sepolia.infura.io/v3/"},
			BlockExplorerURLs: []string{"https://sepolia.etherscan.io"},
		},
	},
}

// Lookup returns the network registered under key.
func Lookup(key string) (Network, error) {
	n, ok := Networks[key]
	if !ok {
		return Network{}, errors.Wrapf(ErrUnknownNetwork, "%q (known: %v)", key, Keys())
	}
	return n, nil
}

// Keys returns the registered network keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(Networks))
	for k := range Networks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Selector checks and changes the wallet's active chain.
type Selector struct {
	rpc    wallet.Caller
	wallet *wallet.Wallet
	log    *logger.Logger
}

// NewSelector wraps a wallet RPC connection; rpc may be nil when no wallet is reachable.
func NewSelector(rpc wallet.Caller, log *logger.Logger) *Selector {
	return &Selector{rpc: rpc, wallet: wallet.New(rpc), log: log}
}

// Available reports whether a wallet answers on the RPC endpoint.
func (s *Selector) Available(ctx context.Context) bool {
	if !s.wallet.Available() {
		return false
	}
	_, err := s.wallet.ChainID(ctx)
	return err == nil
}

// Check reports whether the wallet is on chainID.
func (s *Selector) Check(ctx context.Context, chainID uint64) (bool, error) {
	if !s.wallet.Available() {
		return false, ErrWalletUnavailable
	}
	current, err := s.wallet.ChainID(ctx)
	if err != nil {
		s.log.Warnf("network check failed: %v", err)
		return false, err
	}
	return current == chainID, nil
}

// Switch asks the wallet to move to n, adding the chain first when the wallet
// does not know it and n carries add-chain parameters.
func (s *Selector) Switch(ctx context.Context, n Network) error {
	if !s.wallet.Available() {
		return ErrWalletUnavailable
	}
	params := map[string]string{"chainId": hexutil.EncodeUint64(n.ChainID)}
	err := s.rpc.CallContext(ctx, nil, "wallet_switchEthereumChain", params)
	if err == nil {
		s.log.Printf("wallet switched to %s (chain %d)", n.Name, n.ChainID)
		return nil
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) || rpcErr.ErrorCode() != codeUnrecognizedChain {
		return errors.Wrapf(err, "switch to %s", n.Name)
	}
	if n.AddChain == nil {
		return errors.Wrapf(ErrUnrecognizedChain, "%s", n.Name)
	}
	if err := s.rpc.CallContext(ctx, nil, "wallet_addEthereumChain", n.AddChain); err != nil {
		return errors.Wrapf(err, "add %s to wallet", n.Name)
	}
	s.log.Printf("wallet added %s (chain %d)", n.Name, n.ChainID)
	return nil
}

// Ensure switches the wallet to n unless it is already there.
func (s *Selector) Ensure(ctx context.Context, n Network) error {
	ok, err := s.Check(ctx, n.ChainID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return s.Switch(ctx, n)
}
