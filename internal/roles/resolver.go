// Package roles resolves the access-control roles and whitelist membership of an account.
package roles

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/logger"
)

// Role identifiers as defined by the contract's access control.
var (
	DefaultAdminRole = common.Hash{}
	PresidentRole    = crypto.Keccak256Hash([]byte("PRESIDENT_ROLE"))
	ScrutateurRole   = crypto.Keccak256Hash([]byte("SCRUTATEUR_ROLE"))
	SecretaireRole   = crypto.Keccak256Hash([]byte("SECRETAIRE_ROLE"))
)

// RoleNames maps role identifiers to their names.
var RoleNames = map[common.Hash]string{
	DefaultAdminRole: "DEFAULT_ADMIN_ROLE",
	PresidentRole:    "PRESIDENT_ROLE",
	ScrutateurRole:   "SCRUTATEUR_ROLE",
	SecretaireRole:   "SECRETAIRE_ROLE",
}

// PredicateResult is the outcome of one predicate call.
type PredicateResult struct {
	Value bool
	Err   error
}

// OK reports whether the call succeeded.
func (r PredicateResult) OK() bool {
	return r.Err == nil
}

// RoleSet holds the roles of one account at one point in time.
type RoleSet struct {
	IsWhitelisted bool
	IsAdmin       bool
	IsPresident   bool
	IsScrutateur  bool
	IsSecretaire  bool
}

// CanAdminister reports whether any role grants access to administration.
func (s RoleSet) CanAdminister() bool {
	return s.IsAdmin || s.IsPresident || s.IsScrutateur || s.IsSecretaire
}

// Names returns the names of the roles held, in a fixed order.
func (s RoleSet) Names() []string {
	var names []string
	if s.IsAdmin {
		names = append(names, RoleNames[DefaultAdminRole])
	}
	if s.IsPresident {
		names = append(names, RoleNames[PresidentRole])
	}
	if s.IsScrutateur {
		names = append(names, RoleNames[ScrutateurRole])
	}
	if s.IsSecretaire {
		names = append(names, RoleNames[SecretaireRole])
	}
	return names
}

// Resolver evaluates the predicates of a RoleChecker.
type Resolver struct {
	checker RoleChecker
	log     *logger.Logger
}

// NewResolver creates a Resolver. A nil log discards output.
func NewResolver(checker RoleChecker, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{checker: checker, log: log}
}

// Whitelisted checks the whitelist through the primary predicate, then the
// alternate one. Both failing yields the last error.
func (r *Resolver) Whitelisted(ctx context.Context, account common.Address) PredicateResult {
	primary := r.whitelistCall(ctx, ledger.MethodWhitelist, account)
	if primary.OK() {
		return primary
	}
	r.log.Warnf("%s(%s) failed, trying %s: %v", ledger.MethodWhitelist, account.Hex(), ledger.MethodIsParticipant, primary.Err)
	alternate := r.whitelistCall(ctx, ledger.MethodIsParticipant, account)
	if !alternate.OK() {
		r.log.Warnf("whitelist status of %s unknown, assuming not whitelisted: %v", account.Hex(), alternate.Err)
	}
	return alternate
}

func (r *Resolver) whitelistCall(ctx context.Context, predicate string, account common.Address) PredicateResult {
	v, err := r.checker.IsWhitelisted(ctx, predicate, account)
	if err != nil {
		predicateFailures.WithLabelValues(predicate).Inc()
		return PredicateResult{Err: err}
	}
	return PredicateResult{Value: v}
}

// HasRole evaluates one role predicate.
func (r *Resolver) HasRole(ctx context.Context, role common.Hash, account common.Address) PredicateResult {
	v, err := r.checker.HasRole(ctx, role, account)
	if err != nil {
		name := RoleNames[role]
		predicateFailures.WithLabelValues(name).Inc()
		r.log.Warnf("hasRole(%s, %s) failed: %v", name, account.Hex(), err)
		return PredicateResult{Err: err}
	}
	return PredicateResult{Value: v}
}

// Resolve evaluates the whitelist and the four role predicates for account.
// Each predicate is independent; failed ones count as false.
func (r *Resolver) Resolve(ctx context.Context, account common.Address) RoleSet {
	set := RoleSet{
		IsWhitelisted: r.Whitelisted(ctx, account).Value,
		IsAdmin:       r.HasRole(ctx, DefaultAdminRole, account).Value,
		IsPresident:   r.HasRole(ctx, PresidentRole, account).Value,
		IsScrutateur:  r.HasRole(ctx, ScrutateurRole, account).Value,
		IsSecretaire:  r.HasRole(ctx, SecretaireRole, account).Value,
	}
	r.log.Printf("roles of %s: whitelisted=%t admin=%t president=%t scrutateur=%t secretaire=%t",
		account.Hex(), set.IsWhitelisted, set.IsAdmin, set.IsPresident, set.IsScrutateur, set.IsSecretaire)
	return set
}
