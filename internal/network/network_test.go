package network

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolution-monitoring/internal/logger"
)

type walletError struct {
	code int
	msg  string
}

func (e walletError) Error() string  { return e.msg }
func (e walletError) ErrorCode() int { return e.code }

type call struct {
	method string
	args   []interface{}
}

// fakeWallet records calls and answers from per-method errors and a fixed chain id.
type fakeWallet struct {
	chainID uint64
	errs    map[string]error
	calls   []call
}

func (f *fakeWallet) CallContext(_ context.Context, result interface{}, method string, args ...interface{}) error {
	f.calls = append(f.calls, call{method: method, args: args})
	if err := f.errs[method]; err != nil {
		return err
	}
	if method == "eth_chainId" {
		*result.(*hexutil.Uint64) = hexutil.Uint64(f.chainID)
	}
	return nil
}

func (f *fakeWallet) methods() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.method)
	}
	return out
}

func TestLookup(t *testing.T) {
	n, err := Lookup("sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), n.ChainID)
	assert.True(t, n.Demo)
	assert.Equal(t, "0xaa36a7", n.AddChain.ChainID)

	_, err = Lookup("mainnet")
	require.ErrorIs(t, err, ErrUnknownNetwork)
	assert.Equal(t, []string{"hardhat", "sepolia"}, Keys())
}

func TestSelectorWithoutWallet(t *testing.T) {
	s := NewSelector(nil, logger.Nop())
	assert.False(t, s.Available(context.Background()))
	_, err := s.Check(context.Background(), 31337)
	require.ErrorIs(t, err, ErrWalletUnavailable)
	require.ErrorIs(t, s.Switch(context.Background(), Networks["hardhat"]), ErrWalletUnavailable)
}

func TestSelectorCheck(t *testing.T) {
	w := &fakeWallet{chainID: 31337}
	s := NewSelector(w, logger.Nop())
	assert.True(t, s.Available(context.Background()))

	ok, err := s.Check(context.Background(), 31337)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Check(context.Background(), 11155111)
	require.NoError(t, err)
	assert.False(t, ok)

	w.errs = map[string]error{"eth_chainId": errors.New("boom")}
	assert.False(t, s.Available(context.Background()))
}

func TestSelectorEnsureSwitches(t *testing.T) {
	w := &fakeWallet{chainID: 31337}
	s := NewSelector(w, logger.Nop())

	require.NoError(t, s.Ensure(context.Background(), Networks["sepolia"]))
	assert.Equal(t, []string{"eth_chainId", "wallet_switchEthereumChain"}, w.methods())
	assert.Equal(t, map[string]string{"chainId": "0xaa36a7"}, w.calls[1].args[0])

	w.calls = nil
	require.NoError(t, s.Ensure(context.Background(), Networks["hardhat"]))
	assert.Equal(t, []string{"eth_chainId", "wallet_switchEthereumChain"}, w.methods())

	w.calls = nil
	w.chainID = 11155111
	require.NoError(t, s.Ensure(context.Background(), Networks["sepolia"]))
	assert.Equal(t, []string{"eth_chainId"}, w.methods())
}

func TestSelectorAddsUnknownChain(t *testing.T) {
	w := &fakeWallet{errs: map[string]error{
		"wallet_switchEthereumChain": walletError{code: 4902, msg: "unrecognized chain"},
	}}
	s := NewSelector(w, logger.Nop())

	require.NoError(t, s.Switch(context.Background(), Networks["sepolia"]))
	assert.Equal(t, []string{"wallet_switchEthereumChain", "wallet_addEthereumChain"}, w.methods())
	assert.Equal(t, Networks["sepolia"].AddChain, w.calls[1].args[0])

	w.calls = nil
	err := s.Switch(context.Background(), Networks["hardhat"])
	require.ErrorIs(t, err, ErrUnrecognizedChain)
	assert.Equal(t, []string{"wallet_switchEthereumChain"}, w.methods())
}

func TestSelectorSwitchFailures(t *testing.T) {
	w := &fakeWallet{errs: map[string]error{
		"wallet_switchEthereumChain": walletError{code: 4001, msg: "user rejected"},
	}}
	s := NewSelector(w, logger.Nop())
	require.ErrorContains(t, s.Switch(context.Background(), Networks["sepolia"]), "user rejected")

	w.errs["wallet_switchEthereumChain"] = walletError{code: 4902, msg: "unrecognized chain"}
	w.errs["wallet_addEthereumChain"] = errors.New("add failed")
	require.ErrorContains(t, s.Switch(context.Background(), Networks["sepolia"]), "add failed")
}
