package usecase

import (
	"context"

	"docgate/internal/domain/entity"
)

// Caller is the authorized identity a document operation runs for.
type Caller struct {
	IdentityKey string
	// AccessCredential is empty on the fast path; the stored one is used then.
	AccessCredential string
}

type CreateDocumentInput struct {
	FileName string `json:"fileName" validate:"required,max=255"`
	Content  string `json:"content"`
}

type RenameDocumentInput struct {
	FileName string `json:"fileName" validate:"required,max=255"`
}

type ShareDocumentInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=reader writer commenter"`
}

type ShareableLinkInput struct {
	PermissionType string `json:"permissionType" validate:"required,oneof=reader writer commenter"`
}

// InsertContentInput carries text placed at the start of the document body.
type InsertContentInput struct {
	Content string `json:"content" validate:"required"`
}

// ReplaceContentInput carries the new body. Empty content is refused so a missing
// field can never wipe the document.
type ReplaceContentInput struct {
	Content string `json:"content" validate:"required"`
}

// DocumentUsecase proxies document operations on behalf of a caller.
type DocumentUsecase interface {
	CreateDocument(ctx context.Context, caller Caller, input *CreateDocumentInput) (*entity.Document, error)
	ListDocuments(ctx context.Context, caller Caller) ([]*entity.Document, error)
	RenameDocument(ctx context.Context, caller Caller, documentID string, input *RenameDocumentInput) (*entity.Document, error)
	InsertDocumentContent(ctx context.Context, caller Caller, documentID string, input *InsertContentInput) error
	ShareDocument(ctx context.Context, caller Caller, documentID string, input *ShareDocumentInput) error
	CreateShareableLink(ctx context.Context, caller Caller, documentID string, input *ShareableLinkInput) (string, error)
	DeleteDocument(ctx context.Context, caller Caller, documentID string) error
	GetDocumentContent(ctx context.Context, caller Caller, documentID string) (*entity.DocumentContent, error)
	ReplaceDocumentContent(ctx context.Context, caller Caller, documentID string, input *ReplaceContentInput) error
}
