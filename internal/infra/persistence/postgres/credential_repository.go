// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	"docgate/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const identityKeyCondition = "identity_key = ?"

// credentialRepository implements the domain.CredentialRepository interface.
// Every write is a single statement scoped to one identity key.
type credentialRepository struct {
	db     *gorm.DB
	sealer service.CredentialSealer
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB, sealer service.CredentialSealer) repository.CredentialRepository {
	return &credentialRepository{
		db:     db,
		sealer: sealer,
	}
}

// GetByIdentityKey loads the record and opens its sealed credentials.
func (repo *credentialRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).Where(identityKeyCondition, identityKey).Take(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load credential")
	}

	return repo.toDomain(&credentialM)
}

// UpsertOnLogin creates the record on first login. Later logins overwrite the access
// credential and attributes; the refresh credential only when a new one was issued.
func (repo *credentialRepository) UpsertOnLogin(ctx context.Context, grant *entity.LoginGrant) (*entity.Credential, error) {
	credentialM, err := repo.fromGrant(grant)
	if err != nil {
		return nil, err
	}

	updateColumns := []string{"access_token", "email", "name", "avatar_url", "updated_at"}
	if credentialM.RefreshToken != nil {
		updateColumns = append(updateColumns, "refresh_token")
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_key"}},
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		Create(credentialM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrCredentialUpdateFailed.WrapMessage("missing required credential information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert credential")
	}

	return repo.GetByIdentityKey(ctx, grant.IdentityKey)
}

func (repo *credentialRepository) UpdateAccessCredential(ctx context.Context, identityKey, accessCredential string) error {
	sealedAccess, err := repo.sealer.Seal(accessCredential)
	if err != nil {
		return errors.Wrap(err, "seal access credential")
	}

	return repo.update(ctx, identityKey, map[string]any{
		"access_token": sealedAccess,
	})
}

// UpdateRotatedCredentials writes both credentials in one statement.
func (repo *credentialRepository) UpdateRotatedCredentials(ctx context.Context, identityKey, accessCredential, refreshCredential string) error {
	sealedAccess, err := repo.sealer.Seal(accessCredential)
	if err != nil {
		return errors.Wrap(err, "seal access credential")
	}

	sealedRefresh, err := repo.sealer.Seal(refreshCredential)
	if err != nil {
		return errors.Wrap(err, "seal refresh credential")
	}

	return repo.update(ctx, identityKey, map[string]any{
		"access_token":  sealedAccess,
		"refresh_token": sealedRefresh,
	})
}

func (repo *credentialRepository) ClearRefreshCredential(ctx context.Context, identityKey string) error {
	return repo.update(ctx, identityKey, map[string]any{
		"refresh_token": nil,
	})
}

func (repo *credentialRepository) update(ctx context.Context, identityKey string, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where(identityKeyCondition, identityKey).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) fromGrant(grant *entity.LoginGrant) (*model.CredentialModel, error) {
	sealedAccess, err := repo.sealer.Seal(grant.AccessCredential)
	if err != nil {
		return nil, errors.Wrap(err, "seal access credential")
	}

	credentialM := &model.CredentialModel{
		IdentityKey: grant.IdentityKey,
		AccessToken: sealedAccess,
		Email:       grant.Attributes.Email,
		Name:        grant.Attributes.Name,
		AvatarURL:   grant.Attributes.AvatarURL,
	}

	if grant.RefreshCredential != nil && *grant.RefreshCredential != "" {
		sealedRefresh, err := repo.sealer.Seal(*grant.RefreshCredential)
		if err != nil {
			return nil, errors.Wrap(err, "seal refresh credential")
		}
		credentialM.RefreshToken = &sealedRefresh
	}

	return credentialM, nil
}

func (repo *credentialRepository) toDomain(credentialM *model.CredentialModel) (*entity.Credential, error) {
	accessCredential, err := repo.sealer.Open(credentialM.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "open access credential")
	}

	credential := &entity.Credential{
		IdentityKey:      credentialM.IdentityKey,
		AccessCredential: accessCredential,
		Attributes: entity.Attributes{
			Name:      credentialM.Name,
			Email:     credentialM.Email,
			AvatarURL: credentialM.AvatarURL,
		},
		CreatedAt: credentialM.CreatedAt,
		UpdatedAt: credentialM.UpdatedAt,
	}

	if credentialM.RefreshToken != nil {
		refreshCredential, err := repo.sealer.Open(*credentialM.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "open refresh credential")
		}
		credential.RefreshCredential = &refreshCredential
	}

	return credential, nil
}
