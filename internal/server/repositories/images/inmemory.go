package images

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// InMemoryRepository keeps case images in a process-scoped map. Contents are
// volatile: nothing survives a restart. This is the documented default for
// single-instance deployments and for tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.CaseImage

	// now is a test seam for the stored timestamp.
	now func() time.Time
}

// NewInMemoryRepository returns an empty volatile store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]models.CaseImage),
		now:   time.Now,
	}
}

// Put stores a copy of img under its key, stamping UploadedAt. An existing
// record under the same key is replaced.
func (r *InMemoryRepository) Put(ctx context.Context, img *models.CaseImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *img
	stored.UploadedAt = r.now()
	r.items[img.Key] = stored
	return nil
}

// Get returns a copy of the record under key, or common.ErrNotFound.
func (r *InMemoryRepository) Get(ctx context.Context, key string) (*models.CaseImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &stored, nil
}
