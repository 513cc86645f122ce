package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/dbx"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// PostgresRepository implements the case image store over a dbx.DBTX
// (*sql.DB or *sql.Tx). It is the durable production alternative to the
// in-memory store.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Put upserts the image by key. A conflicting row is overwritten, matching
// the last-write-wins contract of the store. UploadedAt is assigned by the
// database.
func (r *PostgresRepository) Put(ctx context.Context, img *models.CaseImage) error {
	query := `
		INSERT INTO case_images (key, data_uri, name, size, uploaded_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (key)
		DO UPDATE SET
			data_uri = EXCLUDED.data_uri,
			name = EXCLUDED.name,
			size = EXCLUDED.size,
			uploaded_at = EXCLUDED.uploaded_at;
	`
	if _, err := r.db.ExecContext(ctx, query, img.Key, img.DataURI, img.Name, img.Size); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the stored image under key, or common.ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, key string) (*models.CaseImage, error) {
	query := `SELECT key, data_uri, name, size, uploaded_at FROM case_images WHERE key = $1`

	var item models.CaseImage
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&item.Key, &item.DataURI, &item.Name, &item.Size, &item.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select image: %w", err)
	}
	return &item, nil
}
