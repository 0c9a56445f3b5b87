package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/media"
	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

type UploadHandler struct {
	uploads *service.UploadService
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}

func RegisterUploads(e *echo.Echo, auth *service.AuthService, uploads *service.UploadService) {
	handler := &UploadHandler{uploads: uploads}

	g := e.Group("", RequireAuth(auth), RequireActive())
	g.POST("/upload-multiple", handler.uploadMultiple)
}

// uploadMultiple handles POST /upload-multiple with one or more image
// files under the "files" field.
func (h *UploadHandler) uploadMultiple(c echo.Context) error {
	if err := c.Request().ParseMultipartForm(32 << 20); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid multipart payload"))
	}

	form := c.Request().MultipartForm
	uploads, closers, err := buildMediaUploads(form)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()

	if len(uploads) == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("no files provided"))
	}

	urls, err := h.uploads.StoreAll(c.Request().Context(), uploads)
	if err != nil {
		if errors.Is(err, service.ErrUploadValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to store files"))
	}

	return c.JSON(http.StatusCreated, UploadResponse{URLs: urls})
}

func buildMediaUploads(form *multipart.Form) ([]media.Upload, []io.ReadCloser, error) {
	if form == nil {
		return nil, nil, nil
	}

	var headers []*multipart.FileHeader
	if files := form.File["files"]; files != nil {
		headers = append(headers, files...)
	}
	if files := form.File["files[]"]; files != nil {
		headers = append(headers, files...)
	}

	uploads := make([]media.Upload, 0, len(headers))
	closers := make([]io.ReadCloser, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			for _, closer := range closers {
				_ = closer.Close()
			}
			return nil, nil, err
		}
		closers = append(closers, file)
		uploads = append(uploads, media.Upload{
			Reader:      file,
			Size:        header.Size,
			FileName:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
		})
	}
	return uploads, closers, nil
}
