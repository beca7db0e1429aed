package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MediaHandler uploads post media to the storage bucket before post
// creation. The interaction core only ever sees the returned URL as an
// opaque string.
type MediaHandler struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(bucket *storage.BucketHandle, bucketName string) *MediaHandler {
	return &MediaHandler{bucket: bucket, bucketName: bucketName}
}

// RegisterMediaRoutes registers media upload routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media", h.Upload)
}

// Upload stores a multipart file under a random object name and returns its
// public URL
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file field")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
	}
	defer src.Close()

	object := fmt.Sprintf("media/%s/%s%s", currentUserID(c), uuid.NewString(), filepath.Ext(fileHeader.Filename))
	w := h.bucket.Object(object).NewWriter(c.Request().Context())
	w.ContentType = fileHeader.Header.Get("Content-Type")
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}
	if err := w.Close(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", h.bucketName, object)
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
