package postgres

import (
	"context"
	"database/sql/driver"
	"encoding/base64"
	"regexp"
	"strings"
	"testing"
	"time"

	"docgate/config"
	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	"docgate/internal/infra/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var credentialColumns = []string{
	"identity_key", "access_token", "refresh_token", "email", "name", "avatar_url", "created_at", "updated_at",
}

var (
	selectCredentialQuery = regexp.QuoteMeta(`SELECT * FROM "credentials" WHERE identity_key = $1`)
	upsertCredentialQuery = regexp.QuoteMeta(`INSERT INTO "credentials"`) + `.*` + regexp.QuoteMeta(`ON CONFLICT ("identity_key") DO UPDATE SET`)
)

func newTestGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func newPlainSealer(t *testing.T) service.CredentialSealer {
	t.Helper()

	sealer, err := auth.NewCredentialSealer(&config.Config{})
	require.NoError(t, err)

	return sealer
}

func newKeyedSealer(t *testing.T) service.CredentialSealer {
	t.Helper()

	key := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("s", 32)))
	sealer, err := auth.NewCredentialSealer(&config.Config{
		CredentialEncryption: &config.CredentialEncryptionConfig{Key: key},
	})
	require.NoError(t, err)

	return sealer
}

// sealedValue matches any argument that carries the sealed prefix and not the plaintext.
type sealedValue struct {
	plaintext string
}

func (m sealedValue) Match(v driver.Value) bool {
	s, ok := v.(string)

	return ok && strings.HasPrefix(s, "sealed:v1:") && !strings.Contains(s, m.plaintext)
}

func credentialRow(refresh any) *sqlmock.Rows {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return sqlmock.NewRows(credentialColumns).
		AddRow("google-sub-1", "access-1", refresh, "ada@example.com", "Ada", "https://example.com/ada.png", now, now)
}

func TestCredentialRepository_GetByIdentityKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(credentialRow("refresh-1"))

		credential, err := repo.GetByIdentityKey(context.Background(), "google-sub-1")

		require.NoError(t, err)
		assert.Equal(t, "google-sub-1", credential.IdentityKey)
		assert.Equal(t, "access-1", credential.AccessCredential)
		require.NotNil(t, credential.RefreshCredential)
		assert.Equal(t, "refresh-1", *credential.RefreshCredential)
		assert.Equal(t, "Ada", credential.Attributes.Name)
		assert.Equal(t, "ada@example.com", credential.Attributes.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cleared refresh credential", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(credentialRow(nil))

		credential, err := repo.GetByIdentityKey(context.Background(), "google-sub-1")

		require.NoError(t, err)
		assert.Nil(t, credential.RefreshCredential)
		assert.False(t, credential.HasRefreshCredential())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(sqlmock.NewRows(credentialColumns))

		credential, err := repo.GetByIdentityKey(context.Background(), "ghost")

		assert.Nil(t, credential)
		assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectQuery(selectCredentialQuery).WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByIdentityKey(context.Background(), "google-sub-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrCredentialNotFound)
		appErr, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err)
		require.True(t, ok)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestCredentialRepository_UpsertOnLogin(t *testing.T) {
	refresh := "refresh-1"

	t.Run("with refresh credential", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(upsertCredentialQuery + `.*"refresh_token"="excluded"."refresh_token"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(credentialRow(refresh))

		credential, err := repo.UpsertOnLogin(context.Background(), &entity.LoginGrant{
			IdentityKey:       "google-sub-1",
			AccessCredential:  "access-1",
			RefreshCredential: &refresh,
			Attributes:        entity.Attributes{Name: "Ada", Email: "ada@example.com"},
		})

		require.NoError(t, err)
		assert.Equal(t, "access-1", credential.AccessCredential)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without refresh credential keeps stored one", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(upsertCredentialQuery + regexp.QuoteMeta(`"updated_at"="excluded"."updated_at"`) + `\s*$`).
			WithArgs("google-sub-1", "access-1", nil, "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(credentialRow(refresh))

		credential, err := repo.UpsertOnLogin(context.Background(), &entity.LoginGrant{
			IdentityKey:      "google-sub-1",
			AccessCredential: "access-1",
		})

		require.NoError(t, err)
		require.NotNil(t, credential.RefreshCredential)
		assert.Equal(t, refresh, *credential.RefreshCredential)
	})

	t.Run("seals credentials before writing", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newKeyedSealer(t))

		mock.ExpectExec(upsertCredentialQuery).
			WithArgs(
				"google-sub-1",
				sealedValue{plaintext: "access-1"},
				sealedValue{plaintext: refresh},
				"ada@example.com", "Ada", "",
				sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectCredentialQuery).WillReturnRows(credentialRow(nil))

		_, err := repo.UpsertOnLogin(context.Background(), &entity.LoginGrant{
			IdentityKey:       "google-sub-1",
			AccessCredential:  "access-1",
			RefreshCredential: &refresh,
			Attributes:        entity.Attributes{Name: "Ada", Email: "ada@example.com"},
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(upsertCredentialQuery).WillReturnError(errors.New("disk full"))

		_, err := repo.UpsertOnLogin(context.Background(), &entity.LoginGrant{
			IdentityKey:      "google-sub-1",
			AccessCredential: "access-1",
		})

		_, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err)
		assert.True(t, ok)
	})
}

func TestCredentialRepository_Updates(t *testing.T) {
	updateAccessQuery := regexp.QuoteMeta(`UPDATE "credentials" SET "access_token"=$1,"updated_at"=$2 WHERE identity_key = $3`)
	updateRotatedQuery := regexp.QuoteMeta(`UPDATE "credentials" SET "access_token"=$1,"refresh_token"=$2,"updated_at"=$3 WHERE identity_key = $4`)
	clearRefreshQuery := regexp.QuoteMeta(`UPDATE "credentials" SET "refresh_token"=$1,"updated_at"=$2 WHERE identity_key = $3`)

	t.Run("access credential", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(updateAccessQuery).
			WithArgs("access-2", sqlmock.AnyArg(), "google-sub-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateAccessCredential(context.Background(), "google-sub-1", "access-2"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rotated credentials in one statement", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(updateRotatedQuery).
			WithArgs("access-2", "refresh-2", sqlmock.AnyArg(), "google-sub-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRotatedCredentials(context.Background(), "google-sub-1", "access-2", "refresh-2"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear refresh credential", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(clearRefreshQuery).
			WithArgs(nil, sqlmock.AnyArg(), "google-sub-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.ClearRefreshCredential(context.Background(), "google-sub-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(updateAccessQuery).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateAccessCredential(context.Background(), "ghost", "access-2")

		assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		repo := NewCredentialRepository(db, newPlainSealer(t))

		mock.ExpectExec(clearRefreshQuery).WillReturnError(errors.New("connection reset"))

		err := repo.ClearRefreshCredential(context.Background(), "google-sub-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrCredentialNotFound)
	})
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		txManager := NewTransactionManager(db, newPlainSealer(t))

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "credentials"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.CredentialRepo().UpdateAccessCredential(context.Background(), "google-sub-1", "access-2")
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newTestGormDB(t)
		txManager := NewTransactionManager(db, newPlainSealer(t))

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "credentials"`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.CredentialRepo().UpdateAccessCredential(context.Background(), "ghost", "access-2")
		})

		assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
