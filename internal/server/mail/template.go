package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// notProvided is the placeholder rendered for every empty optional field,
// so the staff mailbox never sees a silent gap.
const notProvided = "Not provided"

var bodyTemplate = template.Must(template.New("notification").Funcs(template.FuncMap{
	"orNotProvided": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return notProvided
		}
		return s
	},
	"kb": func(size int64) int64 {
		return (size + 512) / 1024
	},
	"upper": strings.ToUpper,
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px;">
  <h2 style="border-bottom: 2px solid #333; padding-bottom: 10px;">New customer case</h2>

  <div style="padding: 15px 0;">
    <h3 style="margin: 0 0 8px 0;">Case details</h3>
    <p style="margin: 4px 0;"><strong>Case ID:</strong> {{.CaseID}}</p>
    <p style="margin: 4px 0;"><strong>Service type:</strong> {{if .Record.ServiceType}}{{upper .Record.ServiceType}}{{else}}NOT SPECIFIED{{end}}</p>
    <p style="margin: 4px 0;"><strong>Submitted:</strong> {{.SubmittedAt}}</p>
  </div>

  <div style="padding: 15px 0;">
    <h3 style="margin: 0 0 8px 0;">Customer</h3>
    <p style="margin: 4px 0;"><strong>Name:</strong> {{.Record.FirstName}} {{.Record.LastName}}</p>
    <p style="margin: 4px 0;"><strong>Phone:</strong> {{.Record.Phone}}</p>
    <p style="margin: 4px 0;"><strong>Email:</strong> {{orNotProvided .Record.Email}}</p>
    <p style="margin: 4px 0;"><strong>Address:</strong> {{orNotProvided .Record.Address}}</p>
    <p style="margin: 4px 0;"><strong>Location:</strong> {{orNotProvided .Record.City}}, {{orNotProvided .Record.State}} {{.Record.ZipCode}}</p>
  </div>

{{if .Record.HasInsurance}}  <div style="padding: 15px 0;">
    <h3 style="margin: 0 0 8px 0;">Insurance</h3>
    <p style="margin: 4px 0;"><strong>Company:</strong> {{orNotProvided .Record.InsuranceCompany}}</p>
    <p style="margin: 4px 0;"><strong>Policy number:</strong> {{orNotProvided .Record.PolicyNumber}}</p>
    <p style="margin: 4px 0;"><strong>Claim number:</strong> {{orNotProvided .Record.ClaimNumber}}</p>
  </div>
{{end}}
{{if .Record.Description}}  <div style="padding: 15px 0;">
    <h3 style="margin: 0 0 8px 0;">Damage description</h3>
    <p style="margin: 0; line-height: 1.6;">{{.Record.Description}}</p>
  </div>
{{end}}
  <div style="padding: 15px 0;">
    <h3 style="margin: 0 0 8px 0;">Photos ({{.ImageCount}})</h3>
{{range $i, $img := .Images}}    <div style="border: 1px solid #ccc; border-radius: 8px; overflow: hidden; margin-bottom: 16px;">
      <img src="{{$img.Src}}" alt="Damage photo {{$img.Number}}" style="width: 100%; height: auto; max-height: 500px; object-fit: contain; display: block;" />
      <div style="padding: 10px; text-align: center; background-color: #f4f4f4;">
        <p style="margin: 0; font-weight: bold;">Photo {{$img.Number}}: {{$img.Name}}</p>
        <p style="margin: 4px 0 0 0; font-size: 12px;">Size: {{kb $img.Size}} KB</p>
      </div>
    </div>
{{end}}  </div>
</div>
`))

const testBody = `<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h1>Email system working</h1>
  <p>This is a test message from the case intake notification channel.</p>
  <p><strong>Status:</strong> delivery configuration is working correctly.</p>
</div>
`

type galleryImage struct {
	// Src is marked as a safe URL so html/template does not reject the
	// data: scheme the inline payloads use.
	Src    template.URL
	Name   string
	Size   int64
	Number int
}

type bodyData struct {
	CaseID      string
	Record      models.CaseRecord
	SubmittedAt string
	ImageCount  int
	Images      []galleryImage
}

// Subject builds the notification subject line for a payload.
func Subject(p *models.NotificationPayload) string {
	service := strings.ToUpper(p.Record.ServiceType)
	if service == "" {
		service = "SERVICE"
	}
	return fmt.Sprintf("New %s case - %s", service, p.CaseID)
}

// RenderNotification produces the HTML body for a payload. Images are
// embedded inline by their data URIs, in payload order.
func RenderNotification(p *models.NotificationPayload) (string, error) {
	data := bodyData{
		CaseID:      p.CaseID,
		Record:      p.Record,
		SubmittedAt: p.SubmittedAt.Format(time.RFC1123),
		ImageCount:  p.ImageCount,
	}
	for i, img := range p.Images {
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("Image_%d", i+1)
		}
		data.Images = append(data.Images, galleryImage{
			Src:    template.URL(img.DataURI),
			Name:   name,
			Size:   img.Size,
			Number: i + 1,
		})
	}

	var sb strings.Builder
	if err := bodyTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return sb.String(), nil
}

// RenderTest returns the minimal canned message used to verify channel
// configuration without a full payload.
func RenderTest() (string, string) {
	return "Test - case intake notification channel", testBody
}
