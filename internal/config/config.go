package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"resolution-monitoring/internal/network"
)

const (
	// DatabaseSchemePostgres is the postgres database scheme identifier
	DatabaseSchemePostgres = "postgres"

	defaultRefreshInterval = 10 * time.Second
	defaultRPCMaxRetries   = 3
)

type Config struct {
	Network         network.Network
	RPCURL          string // ledger JSON-RPC endpoint
	WalletRPCURL    string // wallet JSON-RPC endpoint, defaults to RPCURL
	WalletAddress   string // optional: fixed account instead of asking the wallet
	ContractsDir    string // directory holding the contract descriptors
	SessionID       string
	DBDialect       string // postgres only
	DBDsn           string // DSN string passed to GORM driver
	RefreshInterval time.Duration
	DemoData        bool
	MetricsAddr     string // optional: listen address of the /metrics endpoint
	RPCMaxRetries   int
	Debug           bool // if true: show logs, no TUI; if false: no logs, show TUI
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "warning: invalid %s=%q, using %d\n", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		fmt.Fprintf(os.Stderr, "warning: invalid %s=%q, using %s\n", key, v, def)
		return def
	}
	return d
}

// parseDatabaseURL interprets DATABASE_URL and returns (dialect, dsn).
// Supported schemes: postgres, postgresql.
func parseDatabaseURL(databaseURL string) (string, string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", err
	}
	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case DatabaseSchemePostgres, "postgresql":
		// GORM postgres driver accepts URL DSN as-is
		return DatabaseSchemePostgres, databaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %s", u.Scheme)
	}
}

// Load reads the configuration from the environment.
// An unknown NETWORK is an error; every other invalid value falls back to its default.
func Load() (Config, error) {
	n, err := network.Lookup(getenv("NETWORK", "hardhat"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Network:         n,
		RPCURL:          getenv("RPC_URL", n.RPCURL),
		WalletAddress:   strings.TrimSpace(os.Getenv("WALLET_ADDRESS")),
		ContractsDir:    getenv("CONTRACTS_DIR", "."),
		SessionID:       getenv("SESSION_ID", uuid.NewString()),
		RefreshInterval: getenvDuration("REFRESH_INTERVAL", defaultRefreshInterval),
		DemoData:        getenvBool("DEMO_DATA", n.Demo),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		RPCMaxRetries:   getenvInt("RPC_MAX_RETRIES", defaultRPCMaxRetries),
		Debug:           getenvBool("DEBUG", false),
	}
	cfg.WalletRPCURL = getenv("WALLET_RPC_URL", cfg.RPCURL)

	if dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); dbURL != "" {
		if dialect, dsn, err := parseDatabaseURL(dbURL); err == nil {
			cfg.DBDialect = dialect
			cfg.DBDsn = dsn
		} else {
			fmt.Fprintf(os.Stderr, "warning: invalid DATABASE_URL, disabling persistence: %v\n", err)
		}
	}

	return cfg, nil
}

func (c Config) String() string {
	return fmt.Sprintf("network=%s rpc=%s db=%s", c.Network.Key, c.RPCURL, c.DBDialect)
}

// DebugString returns a human-friendly configuration string with masked secrets.
func (c Config) DebugString() string {
	return fmt.Sprintf(
		"network=%s rpc=%s wallet_rpc=%s contracts_dir=%s session=%s db=%s dsn=%s refresh=%s demo=%t metrics=%s retries=%d",
		c.Network.Key,
		maskURL(c.RPCURL),
		maskURL(c.WalletRPCURL),
		c.ContractsDir,
		c.SessionID,
		c.DBDialect,
		maskDSN(c.DBDialect, c.DBDsn),
		c.RefreshInterval,
		c.DemoData,
		c.MetricsAddr,
		c.RPCMaxRetries,
	)
}

// maskURL hides credentials in the user info and hides provider API keys,
// which hosted endpoints carry as the last path segment (https://host/v3/<key>).
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	if i := strings.LastIndex(u.Path, "/"); i >= 0 && len(u.Path)-i > 16 {
		u.Path = u.Path[:i+1]
		u.RawPath = ""
		u.RawQuery = ""
		return u.String() + "***"
	}
	return u.String()
}

func maskDSN(dialect, dsn string) string {
	switch strings.ToLower(dialect) {
	case DatabaseSchemePostgres:
		if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
			if u.User != nil {
				username := u.User.Username()
				u.User = url.User(username)
			}
			return u.String()
		}
		// Fallback for DSN as key-value list
		parts := strings.Fields(dsn)
		for i, p := range parts {
			lower := strings.ToLower(p)
			if strings.HasPrefix(lower, "password=") {
				parts[i] = "password=***"
			}
		}
		return strings.Join(parts, " ")
	default:
		return dsn
	}
}
