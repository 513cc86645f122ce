// Package services implements the client-side intake flow: concurrent
// image compression and the submit pipeline against the intake API.
package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/caseintake/internal/caseid"
	"github.com/dmitrijs2005/caseintake/internal/client/client"
	"github.com/dmitrijs2005/caseintake/internal/client/models"
	"github.com/dmitrijs2005/caseintake/internal/imagex"
)

// SubmissionService runs the full client-side pipeline: compress the
// selected photos, upload them, and dispatch the notification.
type SubmissionService struct {
	api     client.Client
	maxDim  int
	quality float64

	// newID is a test seam for local image identifiers.
	newID func() string
}

func NewSubmissionService(api client.Client, maxDim int, quality float64) *SubmissionService {
	return &SubmissionService{api: api, maxDim: maxDim, quality: quality, newID: uuid.NewString}
}

// SubmissionResult summarizes one completed submission.
type SubmissionResult struct {
	CaseID    string
	Images    []models.CompressedImage
	Skipped   []string
	Stored    []client.StoredImage
	MessageID string
	Recipient string
	Timestamp string
}

// CompressAll compresses the selected photos concurrently. The result
// order matches the selection order regardless of which compression
// finishes first. A file that cannot be read or decoded is dropped from
// the batch; its name is returned in the second slice so the caller can
// tell the customer which photos were left out.
func (s *SubmissionService) CompressAll(ctx context.Context, files []models.LocalImage) ([]models.CompressedImage, []string, error) {
	slots := make([]*models.CompressedImage, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fh, err := os.Open(f.Path)
			if err != nil {
				return nil
			}
			defer fh.Close()

			comp, err := imagex.Compress(fh, s.maxDim, s.quality)
			if err != nil {
				return nil
			}

			slots[i] = &models.CompressedImage{
				ID:      s.newID(),
				DataURI: comp.DataURI,
				Name:    f.Name,
				Size:    comp.Size,
				Width:   comp.Width,
				Height:  comp.Height,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	out := make([]models.CompressedImage, 0, len(files))
	var skipped []string
	for i, slot := range slots {
		if slot == nil {
			skipped = append(skipped, files[i].Name)
			continue
		}
		out = append(out, *slot)
	}
	return out, skipped, nil
}

// Submit runs the whole pipeline for one case: generate the case token,
// compress, upload, notify. Nothing is retried; a failed stage fails the
// submission and the customer keeps their local photos.
func (s *SubmissionService) Submit(ctx context.Context, form *models.CaseForm, files []models.LocalImage) (*SubmissionResult, error) {
	caseID, err := caseid.New()
	if err != nil {
		return nil, err
	}

	imgs, skipped, err := s.CompressAll(ctx, files)
	if err != nil {
		return nil, err
	}

	var stored []client.StoredImage
	if len(imgs) > 0 {
		stored, err = s.api.StoreImages(ctx, caseID, imgs)
		if err != nil {
			return nil, fmt.Errorf("storing images: %w", err)
		}
	}

	res, err := s.api.SendNotification(ctx, form, caseID, imgs)
	if err != nil {
		return nil, fmt.Errorf("sending notification: %w", err)
	}

	return &SubmissionResult{
		CaseID:    caseID,
		Images:    imgs,
		Skipped:   skipped,
		Stored:    stored,
		MessageID: res.MessageID,
		Recipient: res.Recipient,
		Timestamp: res.Timestamp,
	}, nil
}

// Ping reports whether the intake server is reachable.
func (s *SubmissionService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}

// SendTest asks the server for a configuration-check email.
func (s *SubmissionService) SendTest(ctx context.Context) (string, error) {
	return s.api.SendTestNotification(ctx)
}
