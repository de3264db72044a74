package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Names used on the resolution contract.
const (
	EventVoteRecorded     = "VoteEnregistre"
	MethodHasRole         = "hasRole"
	MethodWhitelist       = "whitelist"
	MethodIsParticipant   = "estParticipant"
	MethodResolutionCount = "resolutionCount"
	MethodResults         = "obtenirResultats"
)

// DefaultABI covers the subset of the contract interface this client uses.
// It is used when a descriptor ships no ABI of its own.
const DefaultABI = `[
  {"type":"event","name":"VoteEnregistre","anonymous":false,"inputs":[
    {"name":"resolutionId","type":"uint256","indexed":true},
    {"name":"voter","type":"address","indexed":false},
    {"name":"voteType","type":"string","indexed":false}]},
  {"type":"function","name":"hasRole","stateMutability":"view",
    "inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],
    "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"whitelist","stateMutability":"view",
    "inputs":[{"name":"","type":"address"}],
    "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"estParticipant","stateMutability":"view",
    "inputs":[{"name":"participant","type":"address"}],
    "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"resolutionCount","stateMutability":"view",
    "inputs":[],
    "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"obtenirResultats","stateMutability":"view",
    "inputs":[{"name":"resolutionId","type":"uint256"}],
    "outputs":[{"name":"pour","type":"uint256"},{"name":"contre","type":"uint256"},{"name":"neutre","type":"uint256"}]}
]`

// ParseABI parses a JSON ABI, falling back to DefaultABI when raw is empty.
func ParseABI(raw string) (abi.ABI, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultABI
	}
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "parse contract abi")
	}
	if _, ok := parsed.Events[EventVoteRecorded]; !ok {
		return abi.ABI{}, errors.Errorf("contract abi has no %s event", EventVoteRecorded)
	}
	return parsed, nil
}
