// Package tenancy decides whose dataset an authenticated account may
// read and write. Team members are redirected to their inviting admin's
// tenant; everyone else owns their own. Every data-access path in the
// application resolves its scope through this package exactly once.
package tenancy

// Account is the minimal identity view needed to resolve a tenant.
type Account struct {
	Email     string
	IsAdmin   bool
	InvitedBy string
}

// ResolveTenantKey returns the email that scopes every business record
// for this account. An admin account carrying a non-empty InvitedBy is
// a team member and operates on the inviter's dataset; all other
// accounts operate on their own. A nil account resolves to "", which
// callers must treat as no access, never as access to everything.
func ResolveTenantKey(a *Account) string {
	if a == nil {
		return ""
	}
	if a.IsAdmin && a.InvitedBy != "" {
		return a.InvitedBy
	}
	return a.Email
}

// IsTeamMember reports whether the account is an invited sub-account
// operating on another tenant's dataset.
func IsTeamMember(a *Account) bool {
	return a != nil && a.IsAdmin && a.InvitedBy != ""
}

// IsMainAdmin reports whether the account is the owning admin of its
// own tenant.
func IsMainAdmin(a *Account) bool {
	return a != nil && a.IsAdmin && a.InvitedBy == ""
}
