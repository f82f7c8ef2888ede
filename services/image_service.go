package services

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/stockroomhq/stockroom-api/utils"
)

// UploadImage validates an uploaded image file and stores it in the blob
// store under a unique generated name preserving the original extension.
// Returns the stored blob name.
func UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Printf("warning: failed to close uploaded file: %v", closeErr)
		}
	}()

	name := utils.UploadFilename(fileHeader.Filename)
	contentType := utils.ImageContentType(name)
	if err := GetBlobStore().Put(name, src, contentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return name, nil
}
