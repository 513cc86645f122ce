// Package services implements the server-side case intake operations on top
// of the image store and the delivery channel.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/caseintake/internal/caseid"
	"github.com/dmitrijs2005/caseintake/internal/datauri"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
	"github.com/dmitrijs2005/caseintake/internal/server/repositories/images"
)

// ImageService stores a case's compressed images and serves them back as
// binary downloads. It depends only on the repository's put/get capability.
type ImageService struct {
	repo images.Repository
}

// NewImageService constructs the service over the given store.
func NewImageService(repo images.Repository) *ImageService {
	return &ImageService{repo: repo}
}

// StoreCase persists the images of one case under "<caseID>_<index>" keys,
// preserving upload order. It returns the keys in the same order.
func (s *ImageService) StoreCase(ctx context.Context, caseID string, imgs []models.EmbeddedImage) ([]string, error) {
	keys := make([]string, 0, len(imgs))
	for i, img := range imgs {
		key := caseid.StorageKey(caseID, i)
		stored := &models.CaseImage{
			Key:     key,
			DataURI: img.DataURI,
			Name:    img.Name,
			Size:    img.Size,
		}
		if err := s.repo.Put(ctx, stored); err != nil {
			return nil, fmt.Errorf("store image %s: %w", key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Download resolves a storage key to decoded binary content. It is a pure
// decode-and-serve path: no re-validation, no re-compression.
//
// Unknown keys propagate common.ErrNotFound; a corrupt stored payload
// propagates common.ErrMalformedPayload.
func (s *ImageService) Download(ctx context.Context, key string) (*models.ImageDownload, error) {
	stored, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	contentType, data, err := datauri.Decode(stored.DataURI)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", key, err)
	}

	return &models.ImageDownload{
		Data:        data,
		ContentType: contentType,
		Name:        stored.Name,
	}, nil
}
