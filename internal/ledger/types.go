// Package ledger defines the vote event vocabulary of the resolution contract and
// a go-ethereum backed proxy for calling it.
package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// VoteType is one of the three ballot options accepted by the contract.
type VoteType string

const (
	VotePour   VoteType = "pour"
	VoteContre VoteType = "contre"
	VoteNeutre VoteType = "neutre"
)

// VoteTypes lists the options in display order.
var VoteTypes = []VoteType{VotePour, VoteContre, VoteNeutre}

// ErrUnknownVoteType is returned when a string is not one of the ballot options.
var ErrUnknownVoteType = errors.New("unknown vote type")

// ParseVoteType validates s as a ballot option. Matching is exact, like the contract.
func ParseVoteType(s string) (VoteType, error) {
	vt := VoteType(strings.TrimSpace(s))
	if !vt.Valid() {
		return "", errors.Wrapf(ErrUnknownVoteType, "%q", s)
	}
	return vt, nil
}

// Valid reports whether v is one of the three options.
func (v VoteType) Valid() bool {
	switch v {
	case VotePour, VoteContre, VoteNeutre:
		return true
	}
	return false
}

func (v VoteType) String() string {
	return string(v)
}

// SentinelTxHash stands in for the hash of a vote not yet observed on the ledger.
const SentinelTxHash = "0x"

// VoteEvent is a decoded VoteEnregistre log. A zero TransactionHash marks a
// synthesized event that has no ledger transaction behind it.
type VoteEvent struct {
	ResolutionID    uint64
	Voter           common.Address
	VoteType        VoteType
	BlockNumber     uint64
	TransactionHash common.Hash
}

// TxHash renders the transaction hash, or the sentinel for synthesized events.
func (e VoteEvent) TxHash() string {
	if e.TransactionHash == (common.Hash{}) {
		return SentinelTxHash
	}
	return e.TransactionHash.Hex()
}

// Tally is the per-option vote count reported by the contract.
type Tally struct {
	Pour   uint64
	Contre uint64
	Neutre uint64
}

// Total returns the number of votes cast.
func (t Tally) Total() uint64 {
	return t.Pour + t.Contre + t.Neutre
}
