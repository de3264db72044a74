package roles

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resolution-monitoring/internal/ledger"
)

var account = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

var errReverted = errors.New("execution reverted")

func TestRoleIdentifiers(t *testing.T) {
	assert.Equal(t, common.Hash{}, DefaultAdminRole)
	assert.Equal(t, crypto.Keccak256([]byte("PRESIDENT_ROLE")), PresidentRole.Bytes())
	assert.NotEqual(t, PresidentRole, ScrutateurRole)
	assert.NotEqual(t, ScrutateurRole, SecretaireRole)
	assert.Len(t, RoleNames, 4)
}

func TestResolveAllPredicates(t *testing.T) {
	checker := NewMockRoleChecker(gomock.NewController(t))
	checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodWhitelist, account).Return(true, nil)
	checker.EXPECT().HasRole(gomock.Any(), DefaultAdminRole, account).Return(false, nil)
	checker.EXPECT().HasRole(gomock.Any(), PresidentRole, account).Return(true, nil)
	checker.EXPECT().HasRole(gomock.Any(), ScrutateurRole, account).Return(false, nil)
	checker.EXPECT().HasRole(gomock.Any(), SecretaireRole, account).Return(true, nil)

	set := NewResolver(checker, nil).Resolve(context.Background(), account)
	assert.Equal(t, RoleSet{IsWhitelisted: true, IsPresident: true, IsSecretaire: true}, set)
	assert.True(t, set.CanAdminister())
	assert.Equal(t, []string{"PRESIDENT_ROLE", "SECRETAIRE_ROLE"}, set.Names())
}

func TestResolveWhitelistFallback(t *testing.T) {
	checker := NewMockRoleChecker(gomock.NewController(t))
	gomock.InOrder(
		checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodWhitelist, account).Return(false, errReverted),
		checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodIsParticipant, account).Return(true, nil),
	)
	checker.EXPECT().HasRole(gomock.Any(), gomock.Any(), account).Return(false, nil).Times(4)

	set := NewResolver(checker, nil).Resolve(context.Background(), account)
	assert.True(t, set.IsWhitelisted)
	assert.False(t, set.CanAdminister())
	assert.Empty(t, set.Names())
}

func TestResolveWhitelistBothFail(t *testing.T) {
	checker := NewMockRoleChecker(gomock.NewController(t))
	checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodWhitelist, account).Return(true, errReverted)
	checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodIsParticipant, account).Return(true, errReverted)

	r := NewResolver(checker, nil)
	res := r.Whitelisted(context.Background(), account)
	require.ErrorIs(t, res.Err, errReverted)
	assert.False(t, res.Value)
}

func TestResolvePrimaryWhitelistSkipsAlternate(t *testing.T) {
	checker := NewMockRoleChecker(gomock.NewController(t))
	checker.EXPECT().IsWhitelisted(gomock.Any(), ledger.MethodWhitelist, account).Return(false, nil)

	res := NewResolver(checker, nil).Whitelisted(context.Background(), account)
	assert.True(t, res.OK())
	assert.False(t, res.Value)
}

func TestResolveIsolatesPredicateFailures(t *testing.T) {
	checker := NewMockRoleChecker(gomock.NewController(t))
	checker.EXPECT().IsWhitelisted(gomock.Any(), gomock.Any(), account).Return(false, errReverted).Times(2)
	checker.EXPECT().HasRole(gomock.Any(), DefaultAdminRole, account).Return(true, errReverted)
	checker.EXPECT().HasRole(gomock.Any(), PresidentRole, account).Return(false, errReverted)
	checker.EXPECT().HasRole(gomock.Any(), ScrutateurRole, account).Return(true, nil)
	checker.EXPECT().HasRole(gomock.Any(), SecretaireRole, account).Return(false, errors.New("connection reset"))

	set := NewResolver(checker, nil).Resolve(context.Background(), account)
	assert.Equal(t, RoleSet{IsScrutateur: true}, set)
	assert.True(t, set.CanAdminister())
}

func TestCanAdminister(t *testing.T) {
	assert.False(t, RoleSet{}.CanAdminister())
	assert.False(t, RoleSet{IsWhitelisted: true}.CanAdminister())
	assert.True(t, RoleSet{IsAdmin: true}.CanAdminister())
	assert.True(t, RoleSet{IsPresident: true}.CanAdminister())
	assert.True(t, RoleSet{IsScrutateur: true}.CanAdminister())
	assert.True(t, RoleSet{IsSecretaire: true}.CanAdminister())
}
