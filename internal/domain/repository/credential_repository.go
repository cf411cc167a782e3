// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"docgate/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential record exists for an identity key.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists one credential record per identity.
// Every mutation is a single statement scoped to one identity key, so concurrent writers
// for the same identity resolve as last-write-wins.
type CredentialRepository interface {
	// GetByIdentityKey loads the record, returning ErrCredentialNotFound when absent.
	GetByIdentityKey(ctx context.Context, identityKey string) (*entity.Credential, error)

	// UpsertOnLogin creates the record on first login or overwrites the access credential and attributes.
	// The stored refresh credential is only replaced when the grant carries a new one.
	UpsertOnLogin(ctx context.Context, grant *entity.LoginGrant) (*entity.Credential, error)

	// UpdateAccessCredential overwrites the access credential after a successful refresh.
	UpdateAccessCredential(ctx context.Context, identityKey string, accessCredential string) error

	// UpdateRotatedCredentials overwrites both credentials in one statement when the provider rotated the refresh credential.
	UpdateRotatedCredentials(ctx context.Context, identityKey string, accessCredential string, refreshCredential string) error

	// ClearRefreshCredential marks the refresh credential absent after the provider invalidated it.
	ClearRefreshCredential(ctx context.Context, identityKey string) error
}
