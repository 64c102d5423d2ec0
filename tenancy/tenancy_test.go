package tenancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTenantKey(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		want    string
	}{
		{
			name:    "team member resolves to inviter",
			account: &Account{Email: "staff@x.com", IsAdmin: true, InvitedBy: "owner@x.com"},
			want:    "owner@x.com",
		},
		{
			name:    "main admin resolves to own email",
			account: &Account{Email: "owner@x.com", IsAdmin: true},
			want:    "owner@x.com",
		},
		{
			name:    "ordinary user resolves to own email",
			account: &Account{Email: "solo@x.com"},
			want:    "solo@x.com",
		},
		{
			name:    "non-admin with stray invitedBy still owns its data",
			account: &Account{Email: "solo@x.com", InvitedBy: "owner@x.com"},
			want:    "solo@x.com",
		},
		{
			name:    "nil account resolves to empty",
			account: nil,
			want:    "",
		},
		{
			name:    "empty account resolves to empty",
			account: &Account{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTenantKey(tt.account))
		})
	}
}

func TestPredicates(t *testing.T) {
	member := &Account{Email: "staff@x.com", IsAdmin: true, InvitedBy: "owner@x.com"}
	owner := &Account{Email: "owner@x.com", IsAdmin: true}
	solo := &Account{Email: "solo@x.com"}

	assert.True(t, IsTeamMember(member))
	assert.False(t, IsTeamMember(owner))
	assert.False(t, IsTeamMember(solo))
	assert.False(t, IsTeamMember(nil))

	assert.True(t, IsMainAdmin(owner))
	assert.False(t, IsMainAdmin(member))
	assert.False(t, IsMainAdmin(solo))
	assert.False(t, IsMainAdmin(nil))
}

func TestInvitedAccountsShareTenant(t *testing.T) {
	owner := &Account{Email: "owner@x.com", IsAdmin: true}
	invited := &Account{Email: "tailor@x.com", IsAdmin: true, InvitedBy: ResolveTenantKey(owner)}

	assert.Equal(t, ResolveTenantKey(owner), ResolveTenantKey(invited))
}
