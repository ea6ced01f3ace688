package importer

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importService *ImportService
	maxFileSize   int64
}

func NewImportHandler(importService *ImportService, maxFileSize int64) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		maxFileSize:   maxFileSize,
	}
}

// Import handles a multipart upload: file, affiliate, source.
func (h *ImportHandler) Import(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}

	// Room for the form fields on top of the file itself.
	limit := h.maxFileSize + 64<<10
	if c.Request.ContentLength > limit {
		handler.RespondDomainError(c, fmt.Errorf("%w: content length %d", ErrFileTooLarge, c.Request.ContentLength))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handler.RespondDomainError(c, fmt.Errorf("%w: %v", ErrFileTooLarge, err))
			return
		}
		handler.RespondDomainError(c, fmt.Errorf("%w: %v", ErrMissingFile, err))
		return
	}
	if fileHeader.Size > h.maxFileSize {
		handler.RespondDomainError(c, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, fileHeader.Size))
		return
	}

	var form ImportForm
	if !handler.Bind(c, &form) {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handler.RespondDomainError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handler.RespondDomainError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	result, err := h.importService.Import(c.Request.Context(), actor, Upload{
		Filename:  fileHeader.Filename,
		Data:      data,
		Affiliate: form.Affiliate,
		Source:    form.Source,
	})
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
