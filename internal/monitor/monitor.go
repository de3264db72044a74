// Package monitor refreshes the voter lists and roles shown by the dashboard.
package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"resolution-monitoring/internal/db"
	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/logger"
	"resolution-monitoring/internal/network"
	"resolution-monitoring/internal/reconcile"
	"resolution-monitoring/internal/roles"
	"resolution-monitoring/internal/session"
	"resolution-monitoring/internal/wallet"
)

const (
	// SnapshotBufferSize is the buffer size of the channel feeding the view.
	SnapshotBufferSize = 4
	// CloseDelay gives the view time to drain before the process exits.
	CloseDelay = 100 * time.Millisecond

	defaultInterval      = 10 * time.Second
	maxConcurrentQueries = 4
)

// ResolutionView is the reconciled state of one resolution.
type ResolutionView struct {
	ID        uint64
	Votes     reconcile.Grouping
	Synthetic bool // demonstration data, not ledger history
	Tally     ledger.Tally
	HasTally  bool
}

// Snapshot is everything the view shows after one refresh.
type Snapshot struct {
	Time        time.Time
	Network     network.Network
	Contract    common.Address
	Account     common.Address
	HasAccount  bool
	Roles       roles.RoleSet
	Resolutions []ResolutionView
}

// Params are the collaborators of a Monitor. Reader and Roles may be nil when
// there is no ledger connection; Wallet may be nil when no wallet is connected.
type Params struct {
	Network    network.Network
	Contract   common.Address
	Reader     ContractReader
	Reconciler *reconcile.Reconciler
	Roles      *roles.Resolver
	Wallet     wallet.Provider
	Session    *session.Session
}

// Monitor periodically builds snapshots.
type Monitor struct {
	Params
	db          *gorm.DB
	clock       clockwork.Clock
	interval    time.Duration
	resolutions []uint64
	demo        bool
	log         *logger.Logger
	lastCount   atomic.Uint64
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithDB archives ledger votes to db.
func WithDB(db *gorm.DB) Option {
	return func(m *Monitor) {
		m.db = db
	}
}

// WithClock replaces the wall clock.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Monitor) {
		m.clock = clock
	}
}

// WithInterval sets the refresh interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithResolutions restricts the monitor to the given resolutions.
func WithResolutions(ids ...uint64) Option {
	return func(m *Monitor) {
		m.resolutions = ids
	}
}

// WithDemoData shows resolution #1 when the contract cannot tell how many exist.
func WithDemoData(demo bool) Option {
	return func(m *Monitor) {
		m.demo = demo
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Monitor) {
		m.log = log
	}
}

// New creates a Monitor.
func New(p Params, opts ...Option) *Monitor {
	m := &Monitor{
		Params:   p,
		clock:    clockwork.NewRealClock(),
		interval: defaultInterval,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run publishes a snapshot immediately and then once per interval until ctx is done.
func (m *Monitor) Run(ctx context.Context, updates chan<- Snapshot) error {
	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case updates <- m.Refresh(ctx):
		case <-ctx.Done():
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
		}
	}
}

// Refresh builds one snapshot. The reconciler and the role resolver run concurrently.
func (m *Monitor) Refresh(ctx context.Context) Snapshot {
	start := m.clock.Now()
	snap := Snapshot{
		Time:     start,
		Network:  m.Network,
		Contract: m.Contract,
	}
	snap.Account, snap.HasAccount = m.account(ctx)

	ids := m.resolutionIDs(ctx)
	snap.Resolutions = make([]ResolutionView, len(ids))

	var eg errgroup.Group
	eg.SetLimit(maxConcurrentQueries)
	if snap.HasAccount && m.Roles != nil {
		eg.Go(func() error {
			snap.Roles = m.Roles.Resolve(ctx, snap.Account)
			return nil
		})
	}
	for i, id := range ids {
		i, id := i, id
		eg.Go(func() error {
			snap.Resolutions[i] = m.resolution(ctx, id)
			return nil
		})
	}
	_ = eg.Wait()

	m.observe(snap)
	refreshDuration.Observe(m.clock.Since(start).Seconds())
	return snap
}

func (m *Monitor) resolution(ctx context.Context, id uint64) ResolutionView {
	events, synthetic := m.Reconciler.Fetch(ctx, id)
	view := ResolutionView{
		ID:        id,
		Votes:     m.Reconciler.GroupByVoteType(ctx, events, id),
		Synthetic: synthetic,
	}
	if synthetic {
		return view
	}

	if m.Reader != nil {
		tally, err := m.Reader.Results(ctx, id)
		if err != nil {
			m.log.Printf("results of resolution #%d unavailable: %v", id, err)
		} else {
			view.Tally, view.HasTally = tally, true
		}
	}

	if m.db != nil {
		n, err := db.ArchiveVotes(m.db.WithContext(ctx), events, m.clock.Now())
		if err != nil {
			m.log.Errorf("archive resolution #%d: %v", id, err)
		} else if n > 0 {
			votesArchived.Add(float64(n))
			m.log.Printf("archived %d votes of resolution #%d", n, id)
		}
	}
	return view
}

// account prefers the wallet's selection and keeps the session in sync with it.
func (m *Monitor) account(ctx context.Context) (common.Address, bool) {
	if m.Wallet != nil {
		if addr, ok := m.Wallet.SelectedAddress(ctx); ok {
			m.cacheAccount(ctx, addr)
			return addr, true
		}
	}
	return m.Session.ConnectedAddress(ctx)
}

func (m *Monitor) cacheAccount(ctx context.Context, addr common.Address) {
	if m.Session == nil {
		return
	}
	if cached, ok := m.Session.ConnectedAddress(ctx); ok && cached == addr {
		return
	}
	if err := m.Session.SetConnectedAddress(ctx, addr); err != nil {
		m.log.Warnf("cache connected address: %v", err)
		return
	}
	m.log.Printf("connected address is now %s", addr.Hex())
}

// resolutionIDs lists the resolutions to show. When the count cannot be read
// the last known count is kept.
func (m *Monitor) resolutionIDs(ctx context.Context) []uint64 {
	if len(m.resolutions) > 0 {
		return m.resolutions
	}

	count := m.lastCount.Load()
	if m.Reader != nil {
		n, err := m.Reader.ResolutionCount(ctx)
		if err != nil {
			m.log.Warnf("resolution count unavailable, keeping %d: %v", count, err)
		} else {
			count = n
			m.lastCount.Store(n)
		}
	}
	if count == 0 && m.demo {
		count = 1
	}

	ids := make([]uint64, 0, count)
	for id := uint64(1); id <= count; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (m *Monitor) observe(snap Snapshot) {
	resolutionsWatched.Set(float64(len(snap.Resolutions)))
	votesListed.Reset()
	for _, r := range snap.Resolutions {
		for vt, entries := range r.Votes {
			for _, e := range entries {
				votesListed.WithLabelValues(string(vt), string(e.Source)).Inc()
			}
		}
	}
}
