package main

import (
	"context"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"resolution-monitoring/internal/config"
	"resolution-monitoring/internal/contractcfg"
	dbpkg "resolution-monitoring/internal/db"
	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/logger"
	"resolution-monitoring/internal/network"
	"resolution-monitoring/internal/reconcile"
	"resolution-monitoring/internal/roles"
	"resolution-monitoring/internal/session"
	"resolution-monitoring/internal/wallet"
)

// app holds the connections shared by all commands.
type app struct {
	cfg        config.Config
	log        *logger.Logger
	db         *gorm.DB
	session    *session.Session
	ledgerRPC  *rpc.Client
	walletRPC  *rpc.Client
	wallet     *wallet.Wallet
	provider   wallet.Provider
	selector   *network.Selector
	descriptor contractcfg.Descriptor
	contract   *ledger.Client
}

// bootstrap loads the configuration and opens the database and RPC connections.
func bootstrap(ctx context.Context, logWriter io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if overrideNetwork != "" {
		if cfg.Network, err = network.Lookup(overrideNetwork); err != nil {
			return nil, err
		}
	}

	a := &app{
		cfg: cfg,
		log: logger.NewWithWriter(cfg.Debug, logWriter),
	}
	a.log.Printf("config loaded: %s", cfg.DebugString())

	a.db, err = dbpkg.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	if a.db != nil {
		a.log.Printf("DB connected")
		if err := dbpkg.AutoMigrate(a.db); err != nil {
			return nil, errors.Wrap(err, "run migrations")
		}
		a.log.Printf("Migrations applied")
		a.session = session.New(session.NewDBStore(a.db, cfg.SessionID), session.WithLogger(a.log.Named("session")))
	} else {
		a.log.Printf("DATABASE_URL not provided – session cache kept in memory")
		a.session = session.New(session.NewMemoryStore(), session.WithLogger(a.log.Named("session")))
	}

	a.ledgerRPC, err = ledger.Dial(ctx, cfg.RPCURL, cfg.RPCMaxRetries, a.log.Named("rpc"))
	if err != nil {
		return nil, err
	}
	a.walletRPC = a.ledgerRPC
	if cfg.WalletRPCURL != cfg.RPCURL {
		a.walletRPC, err = ledger.Dial(ctx, cfg.WalletRPCURL, cfg.RPCMaxRetries, a.log.Named("wallet"))
		if err != nil {
			a.close()
			return nil, err
		}
	}

	a.wallet = wallet.New(a.walletRPC)
	a.provider = a.wallet
	if cfg.WalletAddress != "" {
		static := wallet.NewStatic(cfg.WalletAddress)
		if _, ok := static.SelectedAddress(ctx); !ok {
			a.close()
			return nil, errors.Errorf("invalid WALLET_ADDRESS %q", cfg.WalletAddress)
		}
		a.provider = static
	}
	a.selector = network.NewSelector(a.walletRPC, a.log.Named("network"))
	return a, nil
}

// connect selects the configured network in the wallet and caches the
// connected account in the session. Failures are reported, not fatal.
func (a *app) connect(ctx context.Context) {
	if a.selector.Available(ctx) {
		if err := a.selector.Ensure(ctx, a.cfg.Network); err != nil {
			a.log.Warnf("wallet is not on %s: %v", a.cfg.Network.Name, err)
		}
	} else {
		a.log.Warnf("no wallet answering at %s", a.cfg.WalletRPCURL)
	}

	var (
		addr common.Address
		ok   bool
	)
	if _, static := a.provider.(wallet.Static); static {
		addr, ok = a.provider.SelectedAddress(ctx)
	} else if requested, err := a.wallet.RequestAccounts(ctx); err == nil {
		addr, ok = requested, true
	} else {
		a.log.Warnf("no account connected: %v", err)
	}
	if !ok {
		return
	}
	if err := a.session.SetConnectedAddress(ctx, addr); err != nil {
		a.log.Warnf("cache connected address: %v", err)
		return
	}
	a.log.Printf("connected as %s", addr.Hex())
}

// loadContract reads the contract descriptor of the configured network.
// A missing descriptor or address is a configuration failure.
func (a *app) loadContract() error {
	d, err := contractcfg.NewLoader(afero.NewOsFs(), a.cfg.ContractsDir).Load(a.cfg.Network)
	if err != nil {
		if errors.Is(err, contractcfg.ErrMissingAddress) {
			return errors.Wrapf(err, "deploy the contract on %s and write %s", a.cfg.Network.Name, a.cfg.Network.ConfigFile)
		}
		return err
	}
	a.descriptor = d
	a.contract = ledger.NewClient(d.Address, d.ABI, ethclient.NewClient(a.ledgerRPC))
	a.log.Printf("contract %s on %s (chain %d)", d.Address.Hex(), d.Network, d.ChainID)
	return nil
}

func (a *app) reconciler() *reconcile.Reconciler {
	return reconcile.New(a.contract, a.session, a.provider,
		reconcile.WithDemoData(a.cfg.DemoData),
		reconcile.WithLogger(a.log.Named("reconcile")),
	)
}

func (a *app) roleResolver() *roles.Resolver {
	return roles.NewResolver(a.contract, a.log.Named("roles"))
}

// account returns the wallet's selection, else the address cached in the session.
func (a *app) account(ctx context.Context) (common.Address, bool) {
	if addr, ok := a.provider.SelectedAddress(ctx); ok {
		return addr, true
	}
	return a.session.ConnectedAddress(ctx)
}

func (a *app) close() {
	if a.walletRPC != nil && a.walletRPC != a.ledgerRPC {
		a.walletRPC.Close()
	}
	if a.ledgerRPC != nil {
		a.ledgerRPC.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.log.Sync()
}
