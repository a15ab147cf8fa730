package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/app"
	"portfoliohub/internal/transport/http/response"
)

type UploadHandler struct {
	fileService    *app.FileService
	maxUploadBytes int64
}

func NewUploadHandler(fileService *app.FileService, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{fileService: fileService, maxUploadBytes: maxUploadBytes}
}

// Upload accepts a multipart form with a single "file" field and attaches it
// to the project in the path.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no file provided")
		return
	}
	if fileHeader.Filename == "" {
		response.Error(c, http.StatusBadRequest, "no file provided")
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "file too large")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	defer src.Close()

	file, err := h.fileService.Upload(app.UploadInput{
		ProjectID:    c.Param("id"),
		CallerID:     userID,
		OriginalName: fileHeader.Filename,
		Content:      src,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProjectNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrNoFile), errors.Is(err, app.ErrFileTypeNotAllowed):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "file uploaded",
		"file": gin.H{
			"id":                file.ID,
			"filename":          file.StoredName,
			"original_filename": file.OriginalName,
			"file_type":         file.Kind,
			"file_size":         file.Size,
		},
	})
}
