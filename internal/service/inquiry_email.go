package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
)

// inquiryEmailData feeds the body templates. Empty Title and Message cause
// their lines to be omitted entirely rather than rendered blank.
type inquiryEmailData struct {
	Purpose   string
	FirstName string
	LastName  string
	Company   string
	Title     string
	Email     string
	Phone     string
	Message   string
	SentAt    string
}

var inquiryHTMLTemplate = htmltemplate.Must(htmltemplate.New("inquiry_html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2C7DA0; border-bottom: 2px solid #49AA43; padding-bottom: 10px;">
    New Website Inquiry
  </h2>

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong style="color: #2C7DA0;">Inquiry Purpose:</strong> {{.Purpose}}</p>
    <p><strong style="color: #2C7DA0;">Name:</strong> {{.FirstName}} {{.LastName}}</p>
    <p><strong style="color: #2C7DA0;">Company:</strong> {{.Company}}</p>
    {{- if .Title}}
    <p><strong style="color: #2C7DA0;">Title:</strong> {{.Title}}</p>
    {{- end}}
    <p><strong style="color: #2C7DA0;">Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong style="color: #2C7DA0;">Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
  </div>
  {{- if .Message}}

  <div style="background: #e9ecef; padding: 15px; border-radius: 5px; margin: 15px 0;">
    <strong style="color: #2C7DA0;">Message:</strong>
    <p style="margin: 10px 0 0 0; white-space: pre-wrap;">{{.Message}}</p>
  </div>
  {{- end}}

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #dee2e6; color: #6c757d; font-size: 12px;">
    <p>This message was sent from your website contact form on {{.SentAt}}</p>
  </div>
</div>
`))

var inquiryTextTemplate = texttemplate.Must(texttemplate.New("inquiry_text").Parse(`New Website Inquiry

Inquiry Purpose: {{.Purpose}}
Name: {{.FirstName}} {{.LastName}}
Company: {{.Company}}
{{- if .Title}}
Title: {{.Title}}
{{- end}}
Email: {{.Email}}
Phone: {{.Phone}}
{{- if .Message}}

Message:
{{.Message}}
{{- end}}

Sent from your website contact form on {{.SentAt}}
`))

// ComposeInquiryEmail renders an inquiry into an outbound message with both
// HTML and plain-text bodies. The reply-to is the visitor's address.
func ComposeInquiryEmail(req *inquiry.InquiryRequest, now time.Time) (*OutboundEmail, error) {
	data := inquiryEmailData{
		Purpose:   req.InquiryPurpose,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Title:     req.Title,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		SentAt:    now.Format("1/2/2006, 3:04:05 PM"),
	}

	var html bytes.Buffer
	if err := inquiryHTMLTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML body: %w", err)
	}

	var text bytes.Buffer
	if err := inquiryTextTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	return &OutboundEmail{
		Subject: fmt.Sprintf("New Inquiry: %s — %s", req.InquiryPurpose, req.Company),
		ReplyTo: req.Email,
		HTML:    html.Bytes(),
		Text:    text.Bytes(),
	}, nil
}
