package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"goveggie/internal/delivery/http/response"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes caps a single uploaded image.
const maxUploadBytes = 10 << 20

// MediaHandler holds dependencies for the photo proxy and upload handlers.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// GetPhoto serves a legacy photo, from the cache or the origin.
func (h *MediaHandler) GetPhoto(c echo.Context) error {
	legacyID, err := pathID(c, "legacy_id")
	if err != nil {
		return err
	}
	filename := c.Param("filename")

	data, err := h.uc.GetPhoto(c.Request().Context(), legacyID, filename)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentTypeFor(filename), data)
}

// Upload stores a multipart image and returns its generated filename.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "file part is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return domainerrors.ErrValidationFailed.WithDetails("file exceeds the upload size limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return errors.Wrap(err, "failed to read upload")
	}
	if len(data) > maxUploadBytes {
		return domainerrors.ErrValidationFailed.WithDetails("file exceeds the upload size limit")
	}

	filename, err := h.uc.Upload(c.Request().Context(), filepath.Ext(fileHeader.Filename), data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"filename": filename,
		"url":      "/uploads/" + filename,
	}, "Upload stored")
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
