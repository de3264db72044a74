package reconcile

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"resolution-monitoring/internal/ledger"
)

// Demonstration data shown when the ledger cannot be used.
var (
	demoUser = common.HexToAddress("0xEe3EA397B1a44f823df1275824F2E86BDf97FB61")

	demoUserVote = ledger.VoteEvent{
		BlockNumber:     12345678,
		TransactionHash: common.HexToHash("0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"),
	}

	demoVoters = []ledger.VoteEvent{
		{
			Voter:           common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906"),
			VoteType:        ledger.VotePour,
			BlockNumber:     12345681,
			TransactionHash: common.HexToHash("0x4567890123abcdef4567890123abcdef4567890123abcdef4567890123abcdef"),
		},
		{
			Voter:           common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
			VoteType:        ledger.VoteContre,
			BlockNumber:     12345679,
			TransactionHash: common.HexToHash("0x2345678901abcdef2345678901abcdef2345678901abcdef2345678901abcdef"),
		},
		{
			Voter:           common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"),
			VoteType:        ledger.VoteNeutre,
			BlockNumber:     12345680,
			TransactionHash: common.HexToHash("0x3456789012abcdef3456789012abcdef3456789012abcdef3456789012abcdef"),
		},
	}
)

// syntheticVotes returns the user's vote (pending type, else pour) followed by the
// canned voters of the other two options, so every option has one voter.
// A canned voter whose address is the user's is left out too.
func (r *Reconciler) syntheticVotes(ctx context.Context, resolutionID uint64, user common.Address, hasUser bool) []ledger.VoteEvent {
	if !hasUser {
		user = demoUser
	}
	vt, ok := r.session.PendingVote(ctx, resolutionID)
	if !ok {
		vt = ledger.VotePour
	}

	own := demoUserVote
	own.ResolutionID = resolutionID
	own.Voter = user
	own.VoteType = vt

	events := make([]ledger.VoteEvent, 0, 1+len(demoVoters))
	events = append(events, own)
	for _, ev := range demoVoters {
		if ev.VoteType == vt || ev.Voter == user {
			continue
		}
		ev.ResolutionID = resolutionID
		events = append(events, ev)
	}
	return events
}
