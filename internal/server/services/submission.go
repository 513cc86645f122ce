package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// SubmissionService assembles validated case submissions into notification
// payloads. It never partially submits: validation failure leaves no trace.
type SubmissionService struct {
	// now is a test seam for the payload timestamp.
	now func() time.Time
}

// NewSubmissionService constructs the assembler.
func NewSubmissionService() *SubmissionService {
	return &SubmissionService{now: time.Now}
}

// Assemble combines a case record, its case identifier and the ordered
// compressed image set into a single immutable NotificationPayload.
//
// First name, last name and phone are required; a missing one yields
// common.ErrValidation naming the field. Image order in the payload matches
// the order of imgs.
func (s *SubmissionService) Assemble(record models.CaseRecord, caseID string, imgs []models.EmbeddedImage) (*models.NotificationPayload, error) {
	if strings.TrimSpace(caseID) == "" {
		return nil, fmt.Errorf("%w: missing case id", common.ErrValidation)
	}
	if err := validateRecord(&record); err != nil {
		return nil, err
	}

	payload := &models.NotificationPayload{
		Record:      record,
		CaseID:      caseID,
		ImageCount:  len(imgs),
		Images:      append([]models.EmbeddedImage(nil), imgs...),
		SubmittedAt: s.now(),
	}
	return payload, nil
}

func validateRecord(r *models.CaseRecord) error {
	var missing []string
	if strings.TrimSpace(r.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(r.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
