package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolution-monitoring/internal/network"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"NETWORK", "RPC_URL", "WALLET_RPC_URL", "WALLET_ADDRESS", "CONTRACTS_DIR", "SESSION_ID",
		"DATABASE_URL", "REFRESH_INTERVAL", "DEMO_DATA", "METRICS_ADDR", "RPC_MAX_RETRIES", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hardhat", cfg.Network.Key)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.RPCURL)
	assert.Equal(t, cfg.RPCURL, cfg.WalletRPCURL)
	assert.Equal(t, ".", cfg.ContractsDir)
	assert.NotEmpty(t, cfg.SessionID)
	assert.Equal(t, 10*time.Second, cfg.RefreshInterval)
	assert.False(t, cfg.DemoData)
	assert.Equal(t, 3, cfg.RPCMaxRetries)
	assert.Empty(t, cfg.DBDialect)
	assert.False(t, cfg.Debug)
}

func TestLoadSepoliaIsDemo(t *testing.T) {
	clearEnv(t)
	t.Setenv("NETWORK", "sepolia")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, network.Networks["sepolia"].RPCURL, cfg.RPCURL)
	assert.True(t, cfg.DemoData)

	t.Setenv("DEMO_DATA", "false")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.DemoData)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPC_URL", "http://node:8545")
	t.Setenv("WALLET_RPC_URL", "http://wallet:8545")
	t.Setenv("WALLET_ADDRESS", " 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 ")
	t.Setenv("SESSION_ID", "s-1")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("RPC_MAX_RETRIES", "5")
	t.Setenv("DATABASE_URL", "postgresql://monitor:secret@db:5432/votes")
	t.Setenv("DEBUG", "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://wallet:8545", cfg.WalletRPCURL)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", cfg.WalletAddress)
	assert.Equal(t, "s-1", cfg.SessionID)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.RPCMaxRetries)
	assert.Equal(t, DatabaseSchemePostgres, cfg.DBDialect)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("REFRESH_INTERVAL", "soon")
	t.Setenv("RPC_MAX_RETRIES", "-1")
	t.Setenv("DATABASE_URL", "mysql://db/votes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultRefreshInterval, cfg.RefreshInterval)
	assert.Equal(t, defaultRPCMaxRetries, cfg.RPCMaxRetries)
	assert.Empty(t, cfg.DBDialect)

	t.Setenv("NETWORK", "mainnet")
	_, err = Load()
	require.ErrorIs(t, err, network.ErrUnknownNetwork)
}

func TestDebugStringMasksSecrets(t *testing.T) {
	cfg := Config{
		Network:      network.Networks["sepolia"],
		RPCURL:       "https://sepolia.infura.io/v3/0123456789abcdef0123456789abcdef",
		WalletRPCURL: "http://user:pw@wallet:8545",
		DBDialect:    DatabaseSchemePostgres,
		DBDsn:        "postgres://monitor:secret@db:5432/votes",
	}

	s := cfg.DebugString()
	assert.NotContains(t, s, "secret")
	assert.NotContains(t, s, "0123456789abcdef")
	assert.NotContains(t, s, ":pw@")
	assert.Contains(t, s, "https://sepolia.infura.io/v3/***")
	assert.Contains(t, s, "postgres://monitor@db:5432/votes")

	assert.Equal(t, "host=db password=***", maskDSN(DatabaseSchemePostgres, "host=db password=secret"))
}
