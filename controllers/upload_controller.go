package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stockroomhq/stockroom-api/services"
	"github.com/stockroomhq/stockroom-api/utils"
)

// GetUploadedImage handles GET /uploads/:filename - serves uploaded
// product images from the configured blob store
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	// Validate filename is not empty
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filename is required"})
		return
	}

	// Security: Prevent directory traversal attacks
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	blob, err := services.GetBlobStore().Get(filename)
	if err != nil {
		if errors.Is(err, services.ErrBlobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer func() {
		if closeErr := blob.Close(); closeErr != nil {
			log.Printf("warning: failed to close blob: %v", closeErr)
		}
	}()

	content, err := io.ReadAll(blob)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.Data(http.StatusOK, utils.ImageContentType(filename), content)
}
