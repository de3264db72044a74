// Package reconcile merges vote events observed on the ledger with the votes the
// current session submitted but the ledger may not show yet.
package reconcile

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/logger"
	"resolution-monitoring/internal/session"
	"resolution-monitoring/internal/wallet"
)

// Source tells where a voter entry came from.
type Source string

const (
	SourceLedger Source = "ledger"
	SourceLocal  Source = "local"
)

// PendingTxHash marks an entry whose transaction the ledger has not shown yet.
const PendingTxHash = "pending"

// VoterEntry is one voter listed under a ballot option.
type VoterEntry struct {
	Address         common.Address
	TransactionHash string
	Source          Source
	Pending         bool
}

// Grouping lists voters per ballot option. All three options are always present.
type Grouping map[ledger.VoteType][]VoterEntry

// NewGrouping returns a grouping with an empty list for every option.
func NewGrouping() Grouping {
	g := make(Grouping, len(ledger.VoteTypes))
	for _, vt := range ledger.VoteTypes {
		g[vt] = []VoterEntry{}
	}
	return g
}

func (g Grouping) has(addr common.Address) bool {
	for _, entries := range g {
		for _, e := range entries {
			if e.Address == addr {
				return true
			}
		}
	}
	return false
}

// Total returns the number of listed voters.
func (g Grouping) Total() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}

// Reconciler produces the voter lists of a resolution.
type Reconciler struct {
	source  VoteEventSource
	session *session.Session
	wallet  wallet.Provider
	demo    bool
	log     *logger.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDemoData makes FetchVotes answer with synthetic data without querying the ledger.
func WithDemoData(demo bool) Option {
	return func(r *Reconciler) {
		r.demo = demo
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// New creates a Reconciler. source is nil when there is no ledger connection;
// w may be nil when no wallet is connected.
func New(source VoteEventSource, sess *session.Session, w wallet.Provider, opts ...Option) *Reconciler {
	r := &Reconciler{
		source:  source,
		session: sess,
		wallet:  w,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// selectedAddress prefers the wallet's selection over the session's cached address.
func (r *Reconciler) selectedAddress(ctx context.Context) (common.Address, bool) {
	if r.wallet != nil {
		if addr, ok := r.wallet.SelectedAddress(ctx); ok {
			return addr, true
		}
	}
	return r.session.ConnectedAddress(ctx)
}

// FetchVotes returns the vote events of a resolution in ledger order. It never
// fails: an empty result means no data is available, not that nobody voted.
//
// When the ledger has no event for the selected address but the session holds
// a pending vote for it, a synthetic event with block 0 and the sentinel hash is
// appended. A demo network yields the synthetic dataset, and so does a failed
// query when the session holds a pending vote for the resolution. Any other
// failed query yields no events.
func (r *Reconciler) FetchVotes(ctx context.Context, resolutionID uint64) []ledger.VoteEvent {
	events, _ := r.Fetch(ctx, resolutionID)
	return events
}

// Fetch is FetchVotes that also reports whether the events are demonstration
// data rather than ledger history.
func (r *Reconciler) Fetch(ctx context.Context, resolutionID uint64) (events []ledger.VoteEvent, synthetic bool) {
	user, hasUser := r.selectedAddress(ctx)

	if r.demo {
		fallbackDemo.Inc()
		r.log.Printf("demo network: synthetic votes for resolution #%d", resolutionID)
		return r.syntheticVotes(ctx, resolutionID, user, hasUser), true
	}
	if r.source == nil {
		r.log.Printf("no ledger connection: no votes for resolution #%d", resolutionID)
		return []ledger.VoteEvent{}, false
	}

	events, err := r.source.QueryVoteEvents(ctx, resolutionID)
	if err != nil {
		if _, pending := r.session.PendingVote(ctx, resolutionID); !pending {
			r.log.Warnf("vote events for resolution #%d unavailable: %v", resolutionID, err)
			return []ledger.VoteEvent{}, false
		}
		fallbackQueryError.Inc()
		r.log.Warnf("vote events for resolution #%d unavailable, using synthetic data around the pending vote: %v", resolutionID, err)
		return r.syntheticVotes(ctx, resolutionID, user, hasUser), true
	}
	r.log.Printf("%d vote events found for resolution #%d", len(events), resolutionID)
	if events == nil {
		events = []ledger.VoteEvent{}
	}
	if !hasUser {
		return events, false
	}

	observed := false
	for _, ev := range events {
		if ev.Voter == user {
			observed = true
			r.log.Printf("%s voted %q on resolution #%d", user.Hex(), ev.VoteType, resolutionID)
		}
	}
	if observed {
		return events, false
	}
	if vt, ok := r.session.PendingVote(ctx, resolutionID); ok {
		gapFillFetch.Inc()
		r.log.Printf("adding pending vote of %s to resolution #%d", user.Hex(), resolutionID)
		events = append(events, ledger.VoteEvent{
			ResolutionID: resolutionID,
			Voter:        user,
			VoteType:     vt,
		})
	}
	return events, false
}

// GroupByVoteType lists the voters of events per option, then adds the
// session's pending vote as a local entry unless the connected address is
// already listed. It does no network I/O.
func (r *Reconciler) GroupByVoteType(ctx context.Context, events []ledger.VoteEvent, resolutionID uint64) Grouping {
	g := NewGrouping()
	for _, ev := range events {
		if !ev.VoteType.Valid() {
			r.log.Printf("skipping vote of %s with unknown type %q", ev.Voter.Hex(), ev.VoteType)
			continue
		}
		g[ev.VoteType] = append(g[ev.VoteType], VoterEntry{
			Address:         ev.Voter,
			TransactionHash: ev.TxHash(),
			Source:          SourceLedger,
		})
	}

	vt, ok := r.session.PendingVote(ctx, resolutionID)
	if !ok {
		return g
	}
	user, ok := r.session.ConnectedAddress(ctx)
	if !ok || g.has(user) {
		return g
	}
	gapFillGroup.Inc()
	g[vt] = append(g[vt], VoterEntry{
		Address:         user,
		TransactionHash: PendingTxHash,
		Source:          SourceLocal,
		Pending:         true,
	})
	return g
}

// Votes fetches and groups the votes of a resolution.
func (r *Reconciler) Votes(ctx context.Context, resolutionID uint64) Grouping {
	return r.GroupByVoteType(ctx, r.FetchVotes(ctx, resolutionID), resolutionID)
}
