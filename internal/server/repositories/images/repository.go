// Package images provides the case image store: keyed storage of compressed
// image payloads with in-memory, PostgreSQL and S3 implementations.
package images

import (
	"context"

	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// Repository is the put/get capability the retrieval service and the store
// endpoint depend on. Keys are opaque strings constructed by the caller
// ("<caseID>_<index>"), never generated here.
//
// Put overwrites silently when the key exists (last-write-wins). Get on an
// absent key returns common.ErrNotFound.
type Repository interface {
	Put(ctx context.Context, img *models.CaseImage) error
	Get(ctx context.Context, key string) (*models.CaseImage, error)
}
