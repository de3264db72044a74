package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Contract is the call surface of the resolution contract used by the
// reconciler and the role resolver.
type Contract interface {
	QueryVoteEvents(ctx context.Context, resolutionID uint64) ([]VoteEvent, error)
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	IsWhitelisted(ctx context.Context, predicate string, account common.Address) (bool, error)
}

// Client is a contract proxy over any go-ethereum contract backend
// (an *ethclient.Client in production, a simulated backend in tests).
type Client struct {
	address  common.Address
	abi      abi.ABI
	backend  bind.ContractBackend
	contract *bind.BoundContract
}

var _ Contract = (*Client)(nil)

// NewClient binds the contract at address using the given ABI.
func NewClient(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) *Client {
	return &Client{
		address:  address,
		abi:      contractABI,
		backend:  backend,
		contract: bind.NewBoundContract(address, contractABI, backend, backend, backend),
	}
}

// Address returns the bound contract address.
func (c *Client) Address() common.Address {
	return c.address
}

// QueryVoteEvents returns every VoteEnregistre log for resolutionID from block 0
// to the latest block, in the order the node returns them.
func (c *Client) QueryVoteEvents(ctx context.Context, resolutionID uint64) ([]VoteEvent, error) {
	event := c.abi.Events[EventVoteRecorded]
	idTopics, err := abi.MakeTopics([]interface{}{new(big.Int).SetUint64(resolutionID)})
	if err != nil {
		return nil, errors.Wrap(err, "build resolution topic")
	}
	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(0),
		Addresses: []common.Address{c.address},
		Topics:    append([][]common.Hash{{event.ID}}, idTopics...),
	}
	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "filter %s logs for resolution %d", EventVoteRecorded, resolutionID)
	}

	events := make([]VoteEvent, 0, len(logs))
	for _, lg := range logs {
		ev, err := c.decodeVoteEvent(lg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode log %s#%d", lg.TxHash.Hex(), lg.Index)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (c *Client) decodeVoteEvent(lg types.Log) (VoteEvent, error) {
	fields := map[string]interface{}{}
	if err := c.contract.UnpackLogIntoMap(fields, EventVoteRecorded, lg); err != nil {
		return VoteEvent{}, err
	}
	id, ok := fields["resolutionId"].(*big.Int)
	if !ok || !id.IsUint64() {
		return VoteEvent{}, errors.Errorf("bad resolutionId field %v", fields["resolutionId"])
	}
	voter, ok := fields["voter"].(common.Address)
	if !ok {
		return VoteEvent{}, errors.Errorf("bad voter field %v", fields["voter"])
	}
	voteType, ok := fields["voteType"].(string)
	if !ok {
		return VoteEvent{}, errors.Errorf("bad voteType field %v", fields["voteType"])
	}
	return VoteEvent{
		ResolutionID:    id.Uint64(),
		Voter:           voter,
		VoteType:        VoteType(voteType),
		BlockNumber:     lg.BlockNumber,
		TransactionHash: lg.TxHash,
	}, nil
}

// HasRole calls hasRole(role, account).
func (c *Client) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	return c.callBool(ctx, MethodHasRole, [32]byte(role), account)
}

// IsWhitelisted calls a single-address boolean predicate such as whitelist or estParticipant.
func (c *Client) IsWhitelisted(ctx context.Context, predicate string, account common.Address) (bool, error) {
	if _, ok := c.abi.Methods[predicate]; !ok {
		return false, errors.Errorf("contract abi has no %s method", predicate)
	}
	return c.callBool(ctx, predicate, account)
}

// ResolutionCount returns the number of resolutions created so far.
func (c *Client) ResolutionCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, MethodResolutionCount)
	if err != nil {
		return 0, err
	}
	n, err := uint64At(out, 0)
	if err != nil {
		return 0, errors.Wrap(err, MethodResolutionCount)
	}
	return n, nil
}

// Results returns the contract's own tally for a resolution.
func (c *Client) Results(ctx context.Context, resolutionID uint64) (Tally, error) {
	out, err := c.call(ctx, MethodResults, new(big.Int).SetUint64(resolutionID))
	if err != nil {
		return Tally{}, err
	}
	var t Tally
	for i, dst := range []*uint64{&t.Pour, &t.Contre, &t.Neutre} {
		if *dst, err = uint64At(out, i); err != nil {
			return Tally{}, errors.Wrap(err, MethodResults)
		}
	}
	return t, nil
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, errors.Wrapf(err, "call %s", method)
	}
	return out, nil
}

func (c *Client) callBool(ctx context.Context, method string, params ...interface{}) (bool, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return false, err
	}
	if len(out) != 1 {
		return false, errors.Errorf("%s returned %d values", method, len(out))
	}
	v, ok := out[0].(bool)
	if !ok {
		return false, errors.Errorf("%s returned %T, want bool", method, out[0])
	}
	return v, nil
}

func uint64At(out []interface{}, i int) (uint64, error) {
	if i >= len(out) {
		return 0, errors.Errorf("missing output %d", i)
	}
	n, ok := out[i].(*big.Int)
	if !ok || !n.IsUint64() {
		return 0, errors.Errorf("output %d is %v, want uint64", i, out[i])
	}
	return n.Uint64(), nil
}
