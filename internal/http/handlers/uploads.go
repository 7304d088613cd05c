package handlers

import (
	"net/http"

	"alhudha-backend/internal/http/middleware"
	"alhudha-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10 MiB

// POST /api/upload accepts a multipart form with "file" and an optional "type" tag.
// The traveler id hint travels with the form but is not persisted here; the
// caller attaches the returned path to a scan field in a follow-up update.
func UploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No files uploaded")
		return
	}
	if fh.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "File exceeds the 10 MB upload limit")
		return
	}

	src, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer src.Close()

	svc := services.UploadService{RequestID: middleware.GetRequestID(c)}
	stored, err := svc.Store(src, fh.Filename, c.PostForm("type"), fh.Header.Get("Content-Type"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"file":    stored,
	})
}

// GET /api/upload/:filename returns the raw stored bytes.
func GetUploadedFile(c *gin.Context) {
	svc := services.UploadService{RequestID: middleware.GetRequestID(c)}
	path, err := svc.Retrieve(c.Param("filename"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.File(path)
}
