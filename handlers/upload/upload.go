package upload

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/services/spaces"
	"github.com/globaledge/api/utils/response"
)

// MaxUploadSize caps media uploads at 5 MB
const MaxUploadSize = 5 << 20

var allowedContentTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadHandler stores admin media uploads in object storage
type UploadHandler struct {
	spaces *spaces.SpacesClient
}

// NewUploadHandler creates a new upload handler. spacesClient may be nil
// when object storage is not configured.
func NewUploadHandler(spacesClient *spaces.SpacesClient) *UploadHandler {
	return &UploadHandler{spaces: spacesClient}
}

// UploadResponse carries the stored object's key and public URL
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadImage accepts a multipart "file" field and stores it under the
// optional "folder" form value (default "media").
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "Object storage is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file upload")
	}
	if fileHeader.Size > MaxUploadSize {
		return response.BadRequest(c, "File exceeds the 5 MB upload limit")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if !allowedContentTypes[contentType] {
		return response.BadRequest(c, "Only PNG, JPEG, WebP, and SVG images are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return response.InternalServerError(c, "Failed to read upload")
	}
	if len(data) > MaxUploadSize {
		return response.BadRequest(c, "File exceeds the 5 MB upload limit")
	}

	folder := c.FormValue("folder", "media")
	key := spaces.GenerateKey(folder, fileHeader.Filename)

	url, err := h.spaces.UploadBytes(c.Context(), key, data, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to store upload")
	}

	return response.Created(c, UploadResponse{Key: key, URL: url})
}

// DeleteImage removes a stored object by key
func (h *UploadHandler) DeleteImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "Object storage is not configured")
	}

	key := c.Query("key")
	if key == "" {
		return response.BadRequest(c, "Missing object key")
	}

	if err := h.spaces.DeleteFile(c.Context(), key); err != nil {
		return response.InternalServerError(c, "Failed to delete object")
	}
	return response.SuccessWithMessage(c, "Object deleted", nil)
}
