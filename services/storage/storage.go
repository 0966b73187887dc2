package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cpicareers/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageServiceImpl stores attachments in Cloudinary.
type StorageServiceImpl struct {
	cld        *cloudinary.Cloudinary
	rootFolder string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, rootFolder string) StorageService {
	return &StorageServiceImpl{
		cld:        cld,
		rootFolder: strings.Trim(rootFolder, "/"),
	}
}

// resourceTypeFor picks the Cloudinary resource bucket for a MIME type.
// PDFs go to "raw" so they are delivered untouched.
func resourceTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}

// Upload streams r to Cloudinary and returns the stored file descriptor.
func (s *StorageServiceImpl) Upload(ctx context.Context, folder, fileName, contentType string, r io.Reader) (*models.StoredFile, error) {
	resourceType := resourceTypeFor(contentType)
	params := uploader.UploadParams{
		Folder:         path.Join(s.rootFolder, folder),
		ResourceType:   resourceType,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	}
	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload %s: %w", fileName, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("StorageServiceImpl: upload of %s rejected: %s", fileName, result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned for %s", fileName)
	}
	return &models.StoredFile{
		PublicID:     result.PublicID,
		URL:          result.SecureURL,
		ResourceType: resourceType,
		FileName:     fileName,
		ContentType:  contentType,
		Size:         int64(result.Bytes),
	}, nil
}

// Delete deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) Delete(ctx context.Context, file models.StoredFile) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     file.PublicID,
		ResourceType: file.ResourceType,
	})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete %s: %w", file.PublicID, err)
	}
	return nil
}
