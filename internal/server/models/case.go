// Package models defines server-side data models for the case intake
// pipeline.
package models

import "time"

// Known service classifications. ServiceType is free-form; these are the
// values the intake form offers.
const (
	ServiceMold        = "mold"
	ServiceWaterDamage = "water-damage"
	ServiceRoof        = "roof"
)

// CaseRecord is the validated customer record produced by the intake form.
// First name, last name and phone are required at submission time; every
// other field may be an empty string, never a null sentinel.
type CaseRecord struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`

	ServiceType string `json:"serviceType"`
	Description string `json:"description"`

	InsuranceCompany string `json:"insuranceCompany"`
	PolicyNumber     string `json:"policyNumber"`
	ClaimNumber      string `json:"claimNumber"`
}

// HasInsurance reports whether any insurance field is filled in. When all
// three are empty the insurance block is omitted from the notification.
func (r CaseRecord) HasInsurance() bool {
	return r.InsuranceCompany != "" || r.PolicyNumber != "" || r.ClaimNumber != ""
}

// EmbeddedImage is one compressed image as it appears inside a notification:
// the self-describing payload, the original filename, and the payload size
// in bytes.
type EmbeddedImage struct {
	DataURI string `json:"url"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
}

// NotificationPayload is the assembled outbound notification for one case.
// It is constructed once by the submission assembler and consumed exactly
// once by the dispatcher. Image order matches upload order.
type NotificationPayload struct {
	Record      CaseRecord
	CaseID      string
	ImageCount  int
	Images      []EmbeddedImage
	SubmittedAt time.Time
}
