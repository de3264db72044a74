package db

import (
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolution-monitoring/internal/config"
	"resolution-monitoring/internal/ledger"
)

var (
	voter   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	someone = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestOpenWithoutDatabase(t *testing.T) {
	gormDB, err := Open(config.Config{})
	require.NoError(t, err)
	assert.Nil(t, gormDB)
	require.NoError(t, AutoMigrate(nil))

	n, err := ArchiveVotes(nil, []ledger.VoteEvent{{ResolutionID: 1}}, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenUnsupportedDialect(t *testing.T) {
	_, err := Open(config.Config{DBDialect: "sqlite", DBDsn: "file.db"})
	require.ErrorContains(t, err, "unsupported")
}

func TestObservedVotes(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []ledger.VoteEvent{
		{ResolutionID: 1, Voter: voter, VoteType: ledger.VoteContre, BlockNumber: 12, TransactionHash: common.HexToHash("0xab")},
		{ResolutionID: 1, Voter: someone, VoteType: ledger.VotePour},
		{ResolutionID: 1, Voter: someone, VoteType: "blanc", TransactionHash: common.HexToHash("0xcd")},
	}

	votes := ObservedVotes(events, at)
	require.Len(t, votes, 1)
	assert.Equal(t, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", votes[0].Voter)
	assert.Equal(t, "contre", votes[0].VoteType)
	assert.Equal(t, uint64(12), votes[0].BlockNumber)
	assert.Equal(t, common.HexToHash("0xab").Hex(), votes[0].TxHash)
	assert.Equal(t, at, votes[0].ObservedAt)
}

func TestArchiveVotesPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	gormDB, err := Open(config.Config{DBDialect: config.DatabaseSchemePostgres, DBDsn: dsn})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(gormDB))

	id := uint64(time.Now().UnixNano())
	events := []ledger.VoteEvent{
		{ResolutionID: id, Voter: voter, VoteType: ledger.VoteNeutre, BlockNumber: 3, TransactionHash: common.HexToHash("0x01")},
		{ResolutionID: id, Voter: someone, VoteType: ledger.VotePour, BlockNumber: 2, TransactionHash: common.HexToHash("0x02")},
	}
	n, err := ArchiveVotes(gormDB, events, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = ArchiveVotes(gormDB, events, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	stored, err := ArchivedVotes(gormDB, id)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "pour", stored[0].VoteType)
}
