package storage

import (
	"context"
	"io"

	"cpicareers/models"
)

// StorageService defines the interface for attachment storage.
type StorageService interface {
	// Upload stores r under folder (relative to the service root folder) and
	// returns its permanent identifier and delivery URL.
	Upload(ctx context.Context, folder, fileName, contentType string, r io.Reader) (*models.StoredFile, error)
	// Delete removes a previously uploaded file.
	Delete(ctx context.Context, file models.StoredFile) error
}
