package impl

import (
	"context"
	"testing"

	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	mockRepo "docgate/internal/mocks/repository"
	mockService "docgate/internal/mocks/service"
	mockUsecase "docgate/internal/mocks/usecase"
	"docgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentServiceMocks struct {
	credentialRepo *mockRepo.MockCredentialRepository
	documents      *mockService.MockDocumentService
	refresher      *mockUsecase.MockTokenRefresher
}

func newTestDocumentService(t *testing.T) (usecase.DocumentUsecase, *documentServiceMocks) {
	t.Helper()

	mocks := &documentServiceMocks{
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		documents:      mockService.NewMockDocumentService(t),
		refresher:      mockUsecase.NewMockTokenRefresher(t),
	}
	srv := NewDocumentService(DocumentServiceParams{
		CredentialRepo: mocks.credentialRepo,
		Documents:      mocks.documents,
		Refresher:      mocks.refresher,
		Logger:         newDiscardLogger(),
	})

	return srv, mocks
}

func TestDocumentService_CreateDocument_UsesStoredCredential(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()
	created := &entity.Document{ID: "doc-1", Name: "Notes", WebViewLink: "https://docs.example.com/doc-1"}

	mocks.credentialRepo.EXPECT().GetByIdentityKey(ctx, "sub-1").
		Return(newTestCredential("sub-1", strPtr("refresh-1")), nil)
	mocks.documents.EXPECT().CreateDocument(ctx, "access-old", "Notes", "hello").Return(created, nil)

	document, err := srv.CreateDocument(ctx, usecase.Caller{IdentityKey: "sub-1"},
		&usecase.CreateDocumentInput{FileName: "Notes", Content: "hello"})

	require.NoError(t, err)
	assert.Same(t, created, document)
}

func TestDocumentService_ListDocuments_UsesRefreshedCredential(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()
	listed := []*entity.Document{{ID: "doc-1"}, {ID: "doc-2"}}

	// The refreshed credential comes from the decision; the store is not read.
	mocks.documents.EXPECT().ListDocuments(ctx, "access-fresh").Return(listed, nil)

	documents, err := srv.ListDocuments(ctx, usecase.Caller{IdentityKey: "sub-1", AccessCredential: "access-fresh"})

	require.NoError(t, err)
	assert.Len(t, documents, 2)
}

func TestDocumentService_RejectedStoredCredential_RefreshesOnce(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.credentialRepo.EXPECT().GetByIdentityKey(ctx, "sub-1").
		Return(newTestCredential("sub-1", strPtr("refresh-1")), nil)
	mocks.documents.EXPECT().DeleteDocument(ctx, "access-old", "doc-1").
		Return(service.ErrAccessCredentialRejected).Once()
	mocks.refresher.EXPECT().Refresh(ctx, "sub-1").
		Return(&usecase.RefreshResult{AccessCredential: "access-new"}, nil).Once()
	mocks.documents.EXPECT().DeleteDocument(ctx, "access-new", "doc-1").Return(nil).Once()

	err := srv.DeleteDocument(ctx, usecase.Caller{IdentityKey: "sub-1"}, "doc-1")

	require.NoError(t, err)
}

func TestDocumentService_RejectedStoredCredential_RefreshFails(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.credentialRepo.EXPECT().GetByIdentityKey(ctx, "sub-1").
		Return(newTestCredential("sub-1", nil), nil)
	mocks.documents.EXPECT().GetDocumentContent(ctx, "access-old", "doc-1").
		Return(nil, service.ErrAccessCredentialRejected)
	mocks.refresher.EXPECT().Refresh(ctx, "sub-1").Return(nil, usecase.ErrNoRefreshCredential)

	_, err := srv.GetDocumentContent(ctx, usecase.Caller{IdentityKey: "sub-1"}, "doc-1")

	require.ErrorIs(t, err, domainerrors.ErrAccessCredentialRejected)
}

func TestDocumentService_RejectedFreshCredential_NoRetry(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.documents.EXPECT().RenameDocument(ctx, "access-fresh", "doc-1", "Renamed").
		Return(nil, service.ErrAccessCredentialRejected).Once()

	_, err := srv.RenameDocument(ctx, usecase.Caller{IdentityKey: "sub-1", AccessCredential: "access-fresh"},
		"doc-1", &usecase.RenameDocumentInput{FileName: "Renamed"})

	require.ErrorIs(t, err, domainerrors.ErrAccessCredentialRejected)
}

func TestDocumentService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		want        error
	}{
		{name: "not found", providerErr: errors.Wrap(service.ErrDocumentNotFound, "doc-1"), want: domainerrors.ErrDocumentNotFound},
		{name: "provider failure", providerErr: errors.New("googleapi: Error 500"), want: domainerrors.ErrDocumentProviderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestDocumentService(t)
			ctx := context.Background()
			caller := usecase.Caller{IdentityKey: "sub-1", AccessCredential: "access-fresh"}

			mocks.documents.EXPECT().ShareDocument(ctx, "access-fresh", "doc-1", "bob@example.com", "writer").
				Return(tt.providerErr)

			err := srv.ShareDocument(ctx, caller, "doc-1", &usecase.ShareDocumentInput{Email: "bob@example.com", Role: "writer"})

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDocumentService_CredentialNotFound(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.credentialRepo.EXPECT().GetByIdentityKey(ctx, "sub-1").Return(nil, repository.ErrCredentialNotFound)

	err := srv.ReplaceDocumentContent(ctx, usecase.Caller{IdentityKey: "sub-1"}, "doc-1",
		&usecase.ReplaceContentInput{Content: "new"})

	require.ErrorIs(t, err, domainerrors.ErrCredentialNotFound)
}

func TestDocumentService_CreateShareableLink_PassesPermissionType(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()
	caller := usecase.Caller{IdentityKey: "sub-1", AccessCredential: "access-fresh"}

	mocks.documents.EXPECT().CreateShareableLink(ctx, "access-fresh", "doc-1", "writer").
		Return("https://docs.example.com/doc-1?edit", nil)

	link, err := srv.CreateShareableLink(ctx, caller, "doc-1", &usecase.ShareableLinkInput{PermissionType: "writer"})

	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/doc-1?edit", link)
}

func TestDocumentService_InsertDocumentContent(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.credentialRepo.EXPECT().GetByIdentityKey(ctx, "sub-1").
		Return(newTestCredential("sub-1", strPtr("refresh-1")), nil)
	mocks.documents.EXPECT().InsertDocumentContent(ctx, "access-old", "doc-1", "appended text").Return(nil)

	err := srv.InsertDocumentContent(ctx, usecase.Caller{IdentityKey: "sub-1"}, "doc-1",
		&usecase.InsertContentInput{Content: "appended text"})

	require.NoError(t, err)
}

func TestDocumentService_InsertDocumentContent_NotFound(t *testing.T) {
	srv, mocks := newTestDocumentService(t)
	ctx := context.Background()

	mocks.documents.EXPECT().InsertDocumentContent(ctx, "access-fresh", "missing", "x").
		Return(errors.Wrap(service.ErrDocumentNotFound, "insert document content"))

	err := srv.InsertDocumentContent(ctx, usecase.Caller{IdentityKey: "sub-1", AccessCredential: "access-fresh"}, "missing",
		&usecase.InsertContentInput{Content: "x"})

	require.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}
