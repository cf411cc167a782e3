// Package document proxies document operations to Google Drive and Google Docs.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/entity"
	"docgate/internal/domain/lifecycle"
	"docgate/internal/domain/service"
	"docgate/internal/errors"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	mimeTypeFolder   = "application/vnd.google-apps.folder"
	mimeTypeDocument = "application/vnd.google-apps.document"

	documentFields     = "id, name, webViewLink, modifiedTime"
	documentListFields = "files(id, name, webViewLink, modifiedTime)"
)

// GoogleDriveService implements service.DocumentService. Documents live in one
// application folder in the user's Drive.
type GoogleDriveService struct {
	folderName string
	// endpoint overrides the API base URL; Drive is served under drive/v3/ below it.
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGoogleDriveService creates the Drive and Docs backed document service.
func NewGoogleDriveService(cfg *config.Config, logger *slog.Logger) service.DocumentService {
	folderName := "YOURDOCUMENT"
	endpoint := ""
	if cfg.Documents != nil {
		if cfg.Documents.FolderName != "" {
			folderName = cfg.Documents.FolderName
		}
		endpoint = cfg.Documents.Endpoint
	}

	timeout := lifecycle.DefaultTimeout
	if cfg.GoogleOAuth != nil && cfg.GoogleOAuth.Timeout > 0 {
		timeout = cfg.GoogleOAuth.Timeout
	}

	return &GoogleDriveService{
		folderName: folderName,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *GoogleDriveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *GoogleDriveService) clientOptions(ctx context.Context, accessCredential string, apiPath string) []option.ClientOption {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessCredential, TokenType: "Bearer"})

	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource))}
	if s.endpoint != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimSuffix(s.endpoint, "/")+"/"+apiPath))
	}

	return opts
}

func (s *GoogleDriveService) driveClient(ctx context.Context, accessCredential string) (*drive.Service, error) {
	client, err := drive.NewService(ctx, s.clientOptions(ctx, accessCredential, "drive/v3/")...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive client")
	}

	return client, nil
}

func (s *GoogleDriveService) docsClient(ctx context.Context, accessCredential string) (*docs.Service, error) {
	client, err := docs.NewService(ctx, s.clientOptions(ctx, accessCredential, "")...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docs client")
	}

	return client, nil
}

// CreateDocument creates a Google Doc inside the application folder and writes the initial content.
func (s *GoogleDriveService) CreateDocument(ctx context.Context, accessCredential, name, content string) (*entity.Document, error) {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return nil, err
	}

	folderID, err := s.ensureFolder(ctx, driveClient)
	if err != nil {
		return nil, err
	}

	file, err := driveClient.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeTypeDocument,
		Parents:  []string{folderID},
	}).Fields(documentFields).Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err, "create document")
	}

	if content != "" {
		docsClient, err := s.docsClient(ctx, accessCredential)
		if err != nil {
			return nil, err
		}

		_, err = docsClient.Documents.BatchUpdate(file.Id, &docs.BatchUpdateDocumentRequest{
			Requests: []*docs.Request{insertTextAtStart(content)},
		}).Context(ctx).Do()
		if err != nil {
			return nil, classifyAPIError(err, "write initial content")
		}
	}

	s.log(ctx).Info("Document created", slog.String("document_id", file.Id))

	return toDocument(file), nil
}

// ListDocuments returns the documents in the application folder, most recently modified first.
func (s *GoogleDriveService) ListDocuments(ctx context.Context, accessCredential string) ([]*entity.Document, error) {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return nil, err
	}

	folderID, found, err := s.findFolder(ctx, driveClient)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.Document{}, nil
	}

	query := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", escapeQuery(folderID), mimeTypeDocument)
	documents := make([]*entity.Document, 0)
	err = driveClient.Files.List().
		Q(query).
		Fields("nextPageToken", documentListFields).
		OrderBy("modifiedTime desc").
		Pages(ctx, func(page *drive.FileList) error {
			for _, file := range page.Files {
				documents = append(documents, toDocument(file))
			}

			return nil
		})
	if err != nil {
		return nil, classifyAPIError(err, "list documents")
	}

	return documents, nil
}

func (s *GoogleDriveService) RenameDocument(ctx context.Context, accessCredential, documentID, name string) (*entity.Document, error) {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return nil, err
	}

	file, err := driveClient.Files.Update(documentID, &drive.File{Name: name}).
		Fields(documentFields).Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err, "rename document")
	}

	return toDocument(file), nil
}

func (s *GoogleDriveService) InsertDocumentContent(ctx context.Context, accessCredential, documentID, content string) error {
	docsClient, err := s.docsClient(ctx, accessCredential)
	if err != nil {
		return err
	}

	_, err = docsClient.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{insertTextAtStart(content)},
	}).Context(ctx).Do()
	if err != nil {
		return classifyAPIError(err, "insert document content")
	}

	s.log(ctx).Info("Document content inserted", slog.String("document_id", documentID))

	return nil
}

// ShareDocument grants role on the document to the user with the given email.
func (s *GoogleDriveService) ShareDocument(ctx context.Context, accessCredential, documentID, email, role string) error {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return err
	}

	_, err = driveClient.Permissions.Create(documentID, &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}).SendNotificationEmail(true).Context(ctx).Do()
	if err != nil {
		return classifyAPIError(err, "share document")
	}

	return nil
}

// CreateShareableLink opens the document to anyone with the link and returns that link.
func (s *GoogleDriveService) CreateShareableLink(ctx context.Context, accessCredential, documentID, role string) (string, error) {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return "", err
	}

	_, err = driveClient.Permissions.Create(documentID, &drive.Permission{
		Type: "anyone",
		Role: role,
	}).Context(ctx).Do()
	if err != nil {
		return "", classifyAPIError(err, "create link permission")
	}

	file, err := driveClient.Files.Get(documentID).Fields("webViewLink").Context(ctx).Do()
	if err != nil {
		return "", classifyAPIError(err, "get document link")
	}

	return file.WebViewLink, nil
}

func (s *GoogleDriveService) DeleteDocument(ctx context.Context, accessCredential, documentID string) error {
	driveClient, err := s.driveClient(ctx, accessCredential)
	if err != nil {
		return err
	}

	if err := driveClient.Files.Delete(documentID).Context(ctx).Do(); err != nil {
		return classifyAPIError(err, "delete document")
	}

	s.log(ctx).Info("Document deleted", slog.String("document_id", documentID))

	return nil
}

// GetDocumentContent returns the title and the concatenated paragraph text.
func (s *GoogleDriveService) GetDocumentContent(ctx context.Context, accessCredential, documentID string) (*entity.DocumentContent, error) {
	docsClient, err := s.docsClient(ctx, accessCredential)
	if err != nil {
		return nil, err
	}

	document, err := docsClient.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err, "get document")
	}

	return &entity.DocumentContent{
		Title:   document.Title,
		Content: extractText(document),
	}, nil
}

// ReplaceDocumentContent deletes the whole body and inserts content in its place.
func (s *GoogleDriveService) ReplaceDocumentContent(ctx context.Context, accessCredential, documentID, content string) error {
	docsClient, err := s.docsClient(ctx, accessCredential)
	if err != nil {
		return err
	}

	document, err := docsClient.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return classifyAPIError(err, "get document")
	}

	requests := make([]*docs.Request, 0, 2)
	// The body always ends with a newline that cannot be deleted.
	if end := bodyEndIndex(document); end > 2 {
		requests = append(requests, &docs.Request{
			DeleteContentRange: &docs.DeleteContentRangeRequest{
				Range: &docs.Range{StartIndex: 1, EndIndex: end - 1},
			},
		})
	}
	if content != "" {
		requests = append(requests, insertTextAtStart(content))
	}
	if len(requests) == 0 {
		return nil
	}

	_, err = docsClient.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return classifyAPIError(err, "replace document content")
	}

	return nil
}

func (s *GoogleDriveService) findFolder(ctx context.Context, driveClient *drive.Service) (string, bool, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false", mimeTypeFolder, escapeQuery(s.folderName))

	list, err := driveClient.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", false, classifyAPIError(err, "find folder")
	}

	if len(list.Files) == 0 {
		return "", false, nil
	}

	return list.Files[0].Id, true, nil
}

func (s *GoogleDriveService) ensureFolder(ctx context.Context, driveClient *drive.Service) (string, error) {
	folderID, found, err := s.findFolder(ctx, driveClient)
	if err != nil || found {
		return folderID, err
	}

	folder, err := driveClient.Files.Create(&drive.File{
		Name:     s.folderName,
		MimeType: mimeTypeFolder,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", classifyAPIError(err, "create folder")
	}

	s.log(ctx).Info("Application folder created", slog.String("folder_id", folder.Id))

	return folder.Id, nil
}

func insertTextAtStart(text string) *docs.Request {
	return &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     text,
		},
	}
}

func bodyEndIndex(document *docs.Document) int64 {
	if document.Body == nil || len(document.Body.Content) == 0 {
		return 0
	}

	return document.Body.Content[len(document.Body.Content)-1].EndIndex
}

func extractText(document *docs.Document) string {
	if document.Body == nil {
		return ""
	}

	var text strings.Builder
	for _, element := range document.Body.Content {
		if element.Paragraph == nil {
			continue
		}
		for _, part := range element.Paragraph.Elements {
			if part.TextRun != nil {
				text.WriteString(part.TextRun.Content)
			}
		}
	}

	return text.String()
}

func toDocument(file *drive.File) *entity.Document {
	document := &entity.Document{
		ID:          file.Id,
		Name:        file.Name,
		WebViewLink: file.WebViewLink,
	}
	if modified, err := time.Parse(time.RFC3339, file.ModifiedTime); err == nil {
		document.ModifiedTime = modified
	}

	return document
}

// escapeQuery escapes a value for use inside a quoted Drive query string.
func escapeQuery(value string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
}

func classifyAPIError(err error, action string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return errors.Join(service.ErrAccessCredentialRejected, errors.Wrap(err, action))
		case http.StatusNotFound:
			return errors.Join(service.ErrDocumentNotFound, errors.Wrap(err, action))
		}
	}

	return errors.Wrap(err, action)
}
