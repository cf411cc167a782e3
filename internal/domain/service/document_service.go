package service

import (
	"context"

	"docgate/internal/domain/entity"
	"docgate/internal/errors"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	// ErrAccessCredentialRejected is returned when the document provider answers 401.
	ErrAccessCredentialRejected = errors.New("access credential rejected by document provider")
)

// DocumentService proxies document operations to the storage provider using the
// caller's access credential.
type DocumentService interface {
	CreateDocument(ctx context.Context, accessCredential, name, content string) (*entity.Document, error)
	ListDocuments(ctx context.Context, accessCredential string) ([]*entity.Document, error)
	RenameDocument(ctx context.Context, accessCredential, documentID, name string) (*entity.Document, error)
	// InsertDocumentContent inserts content at the start of the body and keeps the existing text.
	InsertDocumentContent(ctx context.Context, accessCredential, documentID, content string) error
	ShareDocument(ctx context.Context, accessCredential, documentID, email, role string) error
	CreateShareableLink(ctx context.Context, accessCredential, documentID, role string) (string, error)
	DeleteDocument(ctx context.Context, accessCredential, documentID string) error
	GetDocumentContent(ctx context.Context, accessCredential, documentID string) (*entity.DocumentContent, error)
	ReplaceDocumentContent(ctx context.Context, accessCredential, documentID, content string) error
}
