package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/network"
	"resolution-monitoring/internal/reconcile"
	"resolution-monitoring/internal/roles"
	"resolution-monitoring/internal/session"
	"resolution-monitoring/internal/wallet"
)

var (
	contract = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
	user     = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	other    = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

type testMonitor struct {
	*Monitor
	source  *reconcile.MockVoteEventSource
	checker *roles.MockRoleChecker
	reader  *MockContractReader
	session *session.Session
	clock   clockwork.FakeClock
}

func newTestMonitor(t *testing.T, w wallet.Provider, opts ...Option) *testMonitor {
	t.Helper()
	ctrl := gomock.NewController(t)
	tm := &testMonitor{
		source:  reconcile.NewMockVoteEventSource(ctrl),
		checker: roles.NewMockRoleChecker(ctrl),
		reader:  NewMockContractReader(ctrl),
		session: session.New(session.NewMemoryStore()),
		clock:   clockwork.NewFakeClock(),
	}
	opts = append([]Option{WithClock(tm.clock), WithInterval(time.Minute)}, opts...)
	tm.Monitor = New(Params{
		Network:    network.Networks["hardhat"],
		Contract:   contract,
		Reader:     tm.reader,
		Reconciler: reconcile.New(tm.source, tm.session, w),
		Roles:      roles.NewResolver(tm.checker, nil),
		Wallet:     w,
		Session:    tm.session,
	}, opts...)
	return tm
}

func (tm *testMonitor) expectRoles(admin bool) {
	tm.checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodWhitelist, user).Return(true, nil)
	tm.checker.EXPECT().HasRole(gomock.Any(), roles.DefaultAdminRole, user).Return(admin, nil)
	tm.checker.EXPECT().HasRole(gomock.Any(), gomock.Not(roles.DefaultAdminRole), user).Return(false, nil).Times(3)
}

func TestRefresh(t *testing.T) {
	tm := newTestMonitor(t, wallet.NewStatic(user.Hex()))
	require.NoError(t, tm.session.RecordVote(context.Background(), 2, ledger.VoteNeutre))
	tm.expectRoles(true)
	tm.reader.EXPECT().ResolutionCount(gomock.Any()).Return(uint64(2), nil)
	tm.source.EXPECT().QueryVoteEvents(gomock.Any(), uint64(1)).Return([]ledger.VoteEvent{
		{ResolutionID: 1, Voter: other, VoteType: ledger.VoteContre, BlockNumber: 5, TransactionHash: common.HexToHash("0x05")},
	}, nil)
	tm.source.EXPECT().QueryVoteEvents(gomock.Any(), uint64(2)).Return(nil, nil)
	tm.reader.EXPECT().Results(gomock.Any(), uint64(1)).Return(ledger.Tally{Contre: 1}, nil)
	tm.reader.EXPECT().Results(gomock.Any(), uint64(2)).Return(ledger.Tally{}, errors.New("execution reverted"))

	snap := tm.Refresh(context.Background())
	assert.Equal(t, tm.clock.Now(), snap.Time)
	assert.Equal(t, contract, snap.Contract)
	assert.Equal(t, "hardhat", snap.Network.Key)
	assert.True(t, snap.HasAccount)
	assert.Equal(t, user, snap.Account)
	assert.True(t, snap.Roles.IsWhitelisted)
	assert.True(t, snap.Roles.CanAdminister())

	require.Len(t, snap.Resolutions, 2)
	first, second := snap.Resolutions[0], snap.Resolutions[1]
	assert.Equal(t, uint64(1), first.ID)
	assert.True(t, first.HasTally)
	assert.Equal(t, uint64(1), first.Tally.Contre)
	assert.Len(t, first.Votes[ledger.VoteContre], 1)

	assert.Equal(t, uint64(2), second.ID)
	assert.False(t, second.HasTally)
	assert.False(t, second.Synthetic)
	require.Len(t, second.Votes[ledger.VoteNeutre], 1)
	assert.Equal(t, user, second.Votes[ledger.VoteNeutre][0].Address)

	cached, ok := tm.session.ConnectedAddress(context.Background())
	require.True(t, ok, "wallet selection is cached in the session")
	assert.Equal(t, user, cached)
}

func TestRefreshKeepsLastCount(t *testing.T) {
	tm := newTestMonitor(t, nil)
	gomock.InOrder(
		tm.reader.EXPECT().ResolutionCount(gomock.Any()).Return(uint64(1), nil),
		tm.reader.EXPECT().ResolutionCount(gomock.Any()).Return(uint64(0), errors.New("timeout")),
	)
	tm.source.EXPECT().QueryVoteEvents(gomock.Any(), uint64(1)).Return(nil, nil).Times(2)
	tm.reader.EXPECT().Results(gomock.Any(), uint64(1)).Return(ledger.Tally{}, nil).Times(2)

	assert.Len(t, tm.Refresh(context.Background()).Resolutions, 1)
	snap := tm.Refresh(context.Background())
	assert.Len(t, snap.Resolutions, 1)
	assert.False(t, snap.HasAccount)
}

func TestRefreshDemo(t *testing.T) {
	sess := session.New(session.NewMemoryStore())
	m := New(Params{
		Network:    network.Networks["sepolia"],
		Reconciler: reconcile.New(nil, sess, nil, reconcile.WithDemoData(true)),
		Session:    sess,
	}, WithDemoData(true), WithClock(clockwork.NewFakeClock()))

	snap := m.Refresh(context.Background())
	require.Len(t, snap.Resolutions, 1)
	view := snap.Resolutions[0]
	assert.True(t, view.Synthetic)
	assert.False(t, view.HasTally)
	assert.Equal(t, 3, view.Votes.Total())
	assert.Equal(t, roles.RoleSet{}, snap.Roles)
}

func TestRefreshFixedResolutions(t *testing.T) {
	tm := newTestMonitor(t, nil, WithResolutions(7))
	require.NoError(t, tm.session.RecordVote(context.Background(), 7, ledger.VoteContre))
	tm.source.EXPECT().QueryVoteEvents(gomock.Any(), uint64(7)).Return(nil, errors.New("connection refused"))

	snap := tm.Refresh(context.Background())
	require.Len(t, snap.Resolutions, 1)
	assert.Equal(t, uint64(7), snap.Resolutions[0].ID)
	assert.True(t, snap.Resolutions[0].Synthetic)
}

func TestRun(t *testing.T) {
	tm := newTestMonitor(t, nil, WithResolutions(3))
	tm.source.EXPECT().QueryVoteEvents(gomock.Any(), uint64(3)).Return(nil, nil).Times(2)
	tm.reader.EXPECT().Results(gomock.Any(), uint64(3)).Return(ledger.Tally{Pour: 2}, nil).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan Snapshot, SnapshotBufferSize)
	done := make(chan error, 1)
	go func() {
		done <- tm.Run(ctx, updates)
	}()

	first := <-updates
	assert.Equal(t, uint64(2), first.Resolutions[0].Tally.Pour)

	tm.clock.Advance(time.Minute)
	second := <-updates
	assert.True(t, second.Time.After(first.Time))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop")
	}
}
