// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Attributes is the descriptive profile snapshot supplied by the identity provider.
// The token lifecycle never reads it; it is carried for display purposes only.
type Attributes struct {
	Name      string // The user's display name.
	Email     string // The user's contact address.
	AvatarURL string // URL to the user's profile picture.
}

// Credential is the durable record kept for every authenticated identity.
// It holds the provider credentials used to call the document API on the user's behalf.
type Credential struct {
	IdentityKey       string     // Provider-issued subject (Google's 'sub' claim). Unique and immutable.
	AccessCredential  string     // Short-lived provider access token.
	RefreshCredential *string    // Long-lived provider refresh token. Nil when absent or cleared after invalidation.
	Attributes        Attributes // Profile snapshot from the last login.
	CreatedAt         time.Time  // Timestamp of the first successful login.
	UpdatedAt         time.Time  // Timestamp of the last credential mutation.
}

// HasRefreshCredential reports whether the record can mint new access credentials on its own.
func (c *Credential) HasRefreshCredential() bool {
	return c != nil && c.RefreshCredential != nil && *c.RefreshCredential != ""
}

// LoginGrant is what a completed provider login yields.
type LoginGrant struct {
	IdentityKey       string
	AccessCredential  string
	RefreshCredential *string // Nil when the provider did not issue one on this login.
	Attributes        Attributes
}
