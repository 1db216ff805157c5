package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// maxImageSize caps product image uploads at 5 MB.
const maxImageSize = 5 << 20

// UploadHandler serves product image uploads.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/admin/upload. Expects a multipart "image" field
// and returns the stored image URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing image file")
		return
	}
	if file.Size > maxImageSize {
		utils.Error(c, 400, "FILE_TOO_LARGE", "Image must be 5MB or smaller")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !service.AllowedImageExt(ext) {
		utils.Error(c, 400, "INVALID_FILE_TYPE", "Image must be jpg, jpeg, png or webp")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Cannot read image file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Cannot read image file")
		return
	}
	if len(data) > maxImageSize {
		utils.Error(c, 400, "FILE_TOO_LARGE", "Image must be 5MB or smaller")
		return
	}

	url, err := h.uploadService.UploadProductImage(c.Request.Context(), ext, data)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Image uploaded", gin.H{"url": url})
}
