// Package session holds the client-side state of one voting session: the
// connected address and the votes submitted but possibly not yet on the ledger.
package session

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/logger"
)

// KeyConnectedAddress stores the address the session connected with.
const KeyConnectedAddress = "connectedAddress"

// VoteKey returns the store key of the pending vote for a resolution.
func VoteKey(resolutionID uint64) string {
	return fmt.Sprintf("vote_%d", resolutionID)
}

// Store is a string key-value store scoped to one session.
// Get reports ok=false for absent keys; err is reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Session exposes typed accessors over a Store.
type Session struct {
	store Store
	log   *logger.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger that reports unreadable entries.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New wraps a store.
func New(store Store, opts ...Option) *Session {
	s := &Session{store: store, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// get reads key and logs backend failures, which callers then treat as absent.
func (s *Session) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warnf("session entry %s unreadable: %v", key, err)
		return "", false
	}
	return raw, ok
}

// PendingVote returns the vote recorded for resolutionID, if any.
// Unreadable or invalid values are logged and reported as absent.
func (s *Session) PendingVote(ctx context.Context, resolutionID uint64) (ledger.VoteType, bool) {
	if s == nil {
		return "", false
	}
	key := VoteKey(resolutionID)
	raw, ok := s.get(ctx, key)
	if !ok {
		return "", false
	}
	vt, err := ledger.ParseVoteType(raw)
	if err != nil {
		s.log.Warnf("session entry %s ignored: %v", key, err)
		return "", false
	}
	return vt, true
}

// ConnectedAddress returns the cached connected address, if any.
func (s *Session) ConnectedAddress(ctx context.Context) (common.Address, bool) {
	if s == nil {
		return common.Address{}, false
	}
	raw, ok := s.get(ctx, KeyConnectedAddress)
	if !ok {
		return common.Address{}, false
	}
	addr, ok := ledger.ParseAddress(raw)
	if !ok {
		s.log.Warnf("session entry %s ignored: invalid address %q", KeyConnectedAddress, raw)
	}
	return addr, ok
}

// RecordVote stores a submitted vote. Called by the submission flow.
func (s *Session) RecordVote(ctx context.Context, resolutionID uint64, vt ledger.VoteType) error {
	if !vt.Valid() {
		return errors.Wrapf(ledger.ErrUnknownVoteType, "%q", string(vt))
	}
	return errors.Wrap(s.store.Set(ctx, VoteKey(resolutionID), string(vt)), "record vote")
}

// SetConnectedAddress stores the address the session connected with.
func (s *Session) SetConnectedAddress(ctx context.Context, addr common.Address) error {
	return errors.Wrap(s.store.Set(ctx, KeyConnectedAddress, addr.Hex()), "record connected address")
}
