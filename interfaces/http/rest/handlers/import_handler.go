package handlers

import (
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"graphboard/application/commands"
	commandhandlers "graphboard/application/commands/handlers"
	"graphboard/infrastructure/tabular"
	"graphboard/pkg/common"
)

const maxImportBytes = 8 << 20

// ImportHandler handles tabular graph import requests. It accepts the
// file either as a multipart upload under the "file" field or as a raw
// text/csv body.
type ImportHandler struct {
	handler *commandhandlers.ImportGraphHandler
	logger  *zap.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(handler *commandhandlers.ImportGraphHandler, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		handler: handler,
		logger:  logger,
	}
}

// Import handles POST /import
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	reader, err := h.openUpload(r)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	defer reader.Close()

	rows, err := tabular.ReadRows(reader)
	if err != nil {
		h.logger.Warn("Import file rejected", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	result, err := h.handler.Handle(r.Context(), commands.ImportGraphCommand{Rows: rows})
	if err != nil {
		h.logger.Error("Import failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// openUpload picks the file stream out of the request
func (h *ImportHandler) openUpload(r *http.Request) (io.ReadCloser, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}

	return http.MaxBytesReader(nil, r.Body, maxImportBytes), nil
}
