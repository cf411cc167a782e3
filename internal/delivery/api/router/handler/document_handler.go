package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"docgate/internal/delivery/api/middleware"
	"docgate/internal/delivery/api/response"
	domainerrors "docgate/internal/domain/errors"
	"docgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler holds dependencies for the document passthrough handlers
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// CreateFile handles creating a document in the application folder
func (h *DocumentHandler) CreateFile(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req usecase.CreateDocumentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	document, err := h.documentUC.CreateDocument(c.Request().Context(), caller, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, document)
}

// ListFiles handles listing the documents in the application folder
func (h *DocumentHandler) ListFiles(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	documents, err := h.documentUC.ListDocuments(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// UpdateFile handles inserting text at the start of a document
func (h *DocumentHandler) UpdateFile(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	var req usecase.InsertContentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	if err := h.documentUC.InsertDocumentContent(c.Request().Context(), caller, fileID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File updated successfully"})
}

// RenameFile handles renaming a document
func (h *DocumentHandler) RenameFile(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	var req usecase.RenameDocumentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rename input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	document, err := h.documentUC.RenameDocument(c.Request().Context(), caller, fileID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, document)
}

// ShareFile handles granting a user access to a document
func (h *DocumentHandler) ShareFile(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	var req usecase.ShareDocumentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	if err := h.documentUC.ShareDocument(c.Request().Context(), caller, fileID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File shared successfully"})
}

// DeleteFile handles deleting a document
func (h *DocumentHandler) DeleteFile(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	if err := h.documentUC.DeleteDocument(c.Request().Context(), caller, fileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File deleted successfully"})
}

// GenerateShareableLink handles opening a document to anyone with the link
func (h *DocumentHandler) GenerateShareableLink(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	var req usecase.ShareableLinkInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	link, err := h.documentUC.CreateShareableLink(c.Request().Context(), caller, fileID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"shareableLink": link})
}

// FetchFileContent handles reading a document's text
func (h *DocumentHandler) FetchFileContent(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	content, err := h.documentUC.GetDocumentContent(c.Request().Context(), caller, fileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, content)
}

// UpdateFileContent handles replacing a document's text
func (h *DocumentHandler) UpdateFileContent(c echo.Context) error {
	caller, fileID, ok := h.callerAndFile(c)
	if !ok {
		return nil
	}

	var req usecase.ReplaceContentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	if err := h.documentUC.ReplaceDocumentContent(c.Request().Context(), caller, fileID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "File content updated successfully"})
}

// callerAndFile writes the error response itself when it returns false.
func (h *DocumentHandler) callerAndFile(c echo.Context) (usecase.Caller, string, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		_ = response.HandleAppError(c, domainerrors.ErrUnauthorized)

		return usecase.Caller{}, "", false
	}

	fileID := strings.TrimSpace(c.Param("fileId"))
	if fileID == "" {
		_ = response.BadRequest(c, "INVALID_ID", "File ID is required")

		return usecase.Caller{}, "", false
	}

	return caller, fileID, true
}
