package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/caseintake/internal/client/models"
	"github.com/dmitrijs2005/caseintake/internal/client/services"
)

// intakeService defines the pipeline surface the CLI needs. The real
// SubmissionService satisfies it; tests can provide a stub.
type intakeService interface {
	Submit(ctx context.Context, form *models.CaseForm, files []models.LocalImage) (*services.SubmissionResult, error)
	Ping(ctx context.Context) error
	SendTest(ctx context.Context) (string, error)
}

// Submit walks the operator through one case submission: collect the case
// record, pick the photos, confirm and run the pipeline.
func (a *App) Submit(ctx context.Context) error {

	form, err := a.collectForm()
	if err != nil {
		return err
	}

	files, err := a.collectPhotos()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCustomer: %s %s, phone %s\n", form.FirstName, form.LastName, form.Phone)
	if form.ServiceType != "" {
		fmt.Fprintf(a.out, "Service type: %s\n", form.ServiceType)
	}
	fmt.Fprintf(a.out, "Photos: %d\n", len(files))

	ok, err := Confirm(a.reader, "Submit this case?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Submission cancelled.")
		return nil
	}

	fmt.Fprintln(a.out, "Compressing and submitting...")

	res, err := a.service.Submit(ctx, form, files)
	if err != nil {
		fmt.Fprintf(a.out, "Submission failed: %v\n", err)
		return err
	}

	for _, name := range res.Skipped {
		fmt.Fprintf(a.out, "Skipped %s: not a readable image\n", name)
	}
	fmt.Fprintf(a.out, "\nCase submitted: %s\n", res.CaseID)
	fmt.Fprintf(a.out, "Notification %s sent to %s\n", res.MessageID, res.Recipient)
	for _, img := range res.Stored {
		fmt.Fprintf(a.out, "  %s (%d KB)  %s\n", img.Name, img.Size/1024, img.DownloadURL)
	}
	return nil
}

func (a *App) collectForm() (*models.CaseForm, error) {
	form := &models.CaseForm{}
	var err error

	if form.FirstName, err = GetRequiredText(a.reader, "- First name", a.out); err != nil {
		return nil, err
	}
	if form.LastName, err = GetRequiredText(a.reader, "- Last name", a.out); err != nil {
		return nil, err
	}
	if form.Phone, err = GetRequiredText(a.reader, "- Phone", a.out); err != nil {
		return nil, err
	}
	if form.Email, err = GetSimpleText(a.reader, "- Email (optional)", a.out); err != nil {
		return nil, err
	}
	if form.Address, err = GetSimpleText(a.reader, "- Address (optional)", a.out); err != nil {
		return nil, err
	}
	if form.City, err = GetSimpleText(a.reader, "- City (optional)", a.out); err != nil {
		return nil, err
	}
	if form.State, err = GetSimpleText(a.reader, "- State (optional)", a.out); err != nil {
		return nil, err
	}
	if form.ZipCode, err = GetSimpleText(a.reader, "- Zip code (optional)", a.out); err != nil {
		return nil, err
	}
	if form.ServiceType, err = GetSimpleText(a.reader, "- Service type (mold / water-damage / roof, optional)", a.out); err != nil {
		return nil, err
	}
	if form.Description, err = GetMultiline(a.reader, "- Damage description (optional):", a.out); err != nil {
		return nil, err
	}
	if form.InsuranceCompany, err = GetSimpleText(a.reader, "- Insurance company (optional)", a.out); err != nil {
		return nil, err
	}
	if form.InsuranceCompany != "" {
		if form.PolicyNumber, err = GetSimpleText(a.reader, "- Policy number (optional)", a.out); err != nil {
			return nil, err
		}
		if form.ClaimNumber, err = GetSimpleText(a.reader, "- Claim number (optional)", a.out); err != nil {
			return nil, err
		}
	}

	return form, nil
}

// collectPhotos prompts for photo paths and keeps only readable files,
// preserving the order the operator entered them in.
func (a *App) collectPhotos() ([]models.LocalImage, error) {
	paths, err := GetLines(a.reader, "- Photo files", a.out)
	if err != nil {
		return nil, err
	}

	files := make([]models.LocalImage, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			fmt.Fprintf(a.out, "Skipping %s: %v\n", p, err)
			continue
		}
		files = append(files, models.LocalImage{Path: p, Name: filepath.Base(p)})
	}
	return files, nil
}
