// Package models holds the client-side data types of the intake flow:
// the case form collected from the user and the image representations
// the pipeline moves between stages.
package models

// CaseForm is the customer-facing case record collected by the CLI.
// JSON tags match the intake API's customerData object.
type CaseForm struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	ZipCode          string `json:"zipCode,omitempty"`
	ServiceType      string `json:"serviceType,omitempty"`
	Description      string `json:"description,omitempty"`
	InsuranceCompany string `json:"insuranceCompany,omitempty"`
	PolicyNumber     string `json:"policyNumber,omitempty"`
	ClaimNumber      string `json:"claimNumber,omitempty"`
}
