package impl

import (
	"context"
	"log/slog"

	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/entity"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/domain/repository"
	"docgate/internal/domain/service"
	"docgate/internal/errors"
	"docgate/internal/usecase"

	"go.uber.org/fx"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	credentialRepo repository.CredentialRepository
	documents      service.DocumentService
	refresher      usecase.TokenRefresher
	logger         *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Documents      service.DocumentService
	Refresher      usecase.TokenRefresher
	Logger         *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		credentialRepo: params.CredentialRepo,
		documents:      params.Documents,
		refresher:      params.Refresher,
		logger:         params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *documentService) CreateDocument(ctx context.Context, caller usecase.Caller, input *usecase.CreateDocumentInput) (*entity.Document, error) {
	var document *entity.Document
	err := srv.withAccess(ctx, caller, "create document", func(accessCredential string) error {
		var err error
		document, err = srv.documents.CreateDocument(ctx, accessCredential, input.FileName, input.Content)

		return err
	})

	return document, err
}

func (srv *documentService) ListDocuments(ctx context.Context, caller usecase.Caller) ([]*entity.Document, error) {
	var documents []*entity.Document
	err := srv.withAccess(ctx, caller, "list documents", func(accessCredential string) error {
		var err error
		documents, err = srv.documents.ListDocuments(ctx, accessCredential)

		return err
	})

	return documents, err
}

func (srv *documentService) RenameDocument(ctx context.Context, caller usecase.Caller, documentID string, input *usecase.RenameDocumentInput) (*entity.Document, error) {
	var document *entity.Document
	err := srv.withAccess(ctx, caller, "rename document", func(accessCredential string) error {
		var err error
		document, err = srv.documents.RenameDocument(ctx, accessCredential, documentID, input.FileName)

		return err
	})

	return document, err
}

func (srv *documentService) InsertDocumentContent(ctx context.Context, caller usecase.Caller, documentID string, input *usecase.InsertContentInput) error {
	return srv.withAccess(ctx, caller, "insert document content", func(accessCredential string) error {
		return srv.documents.InsertDocumentContent(ctx, accessCredential, documentID, input.Content)
	})
}

func (srv *documentService) ShareDocument(ctx context.Context, caller usecase.Caller, documentID string, input *usecase.ShareDocumentInput) error {
	return srv.withAccess(ctx, caller, "share document", func(accessCredential string) error {
		return srv.documents.ShareDocument(ctx, accessCredential, documentID, input.Email, input.Role)
	})
}

func (srv *documentService) CreateShareableLink(ctx context.Context, caller usecase.Caller, documentID string, input *usecase.ShareableLinkInput) (string, error) {
	var link string
	err := srv.withAccess(ctx, caller, "create shareable link", func(accessCredential string) error {
		var err error
		link, err = srv.documents.CreateShareableLink(ctx, accessCredential, documentID, input.PermissionType)

		return err
	})

	return link, err
}

func (srv *documentService) DeleteDocument(ctx context.Context, caller usecase.Caller, documentID string) error {
	return srv.withAccess(ctx, caller, "delete document", func(accessCredential string) error {
		return srv.documents.DeleteDocument(ctx, accessCredential, documentID)
	})
}

func (srv *documentService) GetDocumentContent(ctx context.Context, caller usecase.Caller, documentID string) (*entity.DocumentContent, error) {
	var content *entity.DocumentContent
	err := srv.withAccess(ctx, caller, "fetch document content", func(accessCredential string) error {
		var err error
		content, err = srv.documents.GetDocumentContent(ctx, accessCredential, documentID)

		return err
	})

	return content, err
}

func (srv *documentService) ReplaceDocumentContent(ctx context.Context, caller usecase.Caller, documentID string, input *usecase.ReplaceContentInput) error {
	return srv.withAccess(ctx, caller, "replace document content", func(accessCredential string) error {
		return srv.documents.ReplaceDocumentContent(ctx, accessCredential, documentID, input.Content)
	})
}

// withAccess resolves the caller's access credential and runs call with it. A stored
// credential the provider rejects is refreshed once and the call retried.
func (srv *documentService) withAccess(ctx context.Context, caller usecase.Caller, operation string, call func(accessCredential string) error) error {
	logger := srv.log(ctx).With(
		slog.String("identity_key", caller.IdentityKey),
		slog.String("operation", operation),
	)

	accessCredential := caller.AccessCredential
	fromStore := accessCredential == ""
	if fromStore {
		record, err := srv.credentialRepo.GetByIdentityKey(ctx, caller.IdentityKey)
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrCredentialNotFound
		}
		if err != nil {
			logger.Error("Failed to load credential", slog.Any("error", err))

			return err
		}
		accessCredential = record.AccessCredential
	}

	err := call(accessCredential)
	if fromStore && errors.Is(err, service.ErrAccessCredentialRejected) {
		logger.Info("Stored access credential rejected, refreshing")

		result, refreshErr := srv.refresher.Refresh(ctx, caller.IdentityKey)
		if refreshErr != nil {
			logger.Warn("Refresh after rejection failed", slog.Any("error", refreshErr))

			return domainerrors.ErrAccessCredentialRejected
		}

		err = call(result.AccessCredential)
	}

	return srv.mapDocumentError(logger, err)
}

func (srv *documentService) mapDocumentError(logger *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrAccessCredentialRejected):
		return domainerrors.ErrAccessCredentialRejected
	case errors.Is(err, service.ErrDocumentNotFound):
		return domainerrors.ErrDocumentNotFound
	default:
		logger.Error("Document provider call failed", slog.Any("error", err))

		return domainerrors.ErrDocumentProviderFailed.WrapMessage(err.Error())
	}
}
