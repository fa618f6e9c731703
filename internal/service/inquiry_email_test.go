package service

import (
	"testing"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRequest() *inquiry.InquiryRequest {
	return &inquiry.InquiryRequest{
		InquiryPurpose: "Investor Relations",
		FirstName:      "Jane",
		LastName:       "Doe",
		Company:        "Acme Corp",
		Title:          "CFO",
		Email:          "jane@acme.example",
		Phone:          "+1 555 0100",
		Message:        "First line.\nSecond line.",
		RecaptchaToken: "tok",
	}
}

func TestComposeInquiryEmail_AllFields(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	email, err := ComposeInquiryEmail(fullRequest(), now)
	require.NoError(t, err)

	assert.Equal(t, "New Inquiry: Investor Relations — Acme Corp", email.Subject)
	assert.Equal(t, "jane@acme.example", email.ReplyTo)

	text := string(email.Text)
	assert.Contains(t, text, "Inquiry Purpose: Investor Relations")
	assert.Contains(t, text, "Name: Jane Doe")
	assert.Contains(t, text, "Company: Acme Corp")
	assert.Contains(t, text, "Title: CFO")
	assert.Contains(t, text, "Email: jane@acme.example")
	assert.Contains(t, text, "Phone: +1 555 0100")
	// Newlines in the message are preserved verbatim
	assert.Contains(t, text, "First line.\nSecond line.")
	assert.Contains(t, text, "3/14/2025, 3:09:26 PM")

	html := string(email.HTML)
	assert.Contains(t, html, `<a href="mailto:jane@acme.example">`)
	assert.Contains(t, html, `<a href="tel:`)
	assert.Contains(t, html, "First line.\nSecond line.")
}

func TestComposeInquiryEmail_OptionalFieldsOmitted(t *testing.T) {
	req := fullRequest()
	req.Title = ""
	req.Message = ""

	email, err := ComposeInquiryEmail(req, time.Now())
	require.NoError(t, err)

	// No empty placeholder lines for absent optional fields
	assert.NotContains(t, string(email.Text), "Title:")
	assert.NotContains(t, string(email.Text), "Message:")
	assert.NotContains(t, string(email.HTML), "Title:")
	assert.NotContains(t, string(email.HTML), "Message:")
}

func TestComposeInquiryEmail_EscapesHTML(t *testing.T) {
	req := fullRequest()
	req.Company = `<script>alert("x")</script>`

	email, err := ComposeInquiryEmail(req, time.Now())
	require.NoError(t, err)

	assert.NotContains(t, string(email.HTML), "<script>")
	// The plain-text body carries the raw value
	assert.Contains(t, string(email.Text), `<script>alert("x")</script>`)
}

func TestComposeInquiryEmail_Idempotent(t *testing.T) {
	req := fullRequest()
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	first, err := ComposeInquiryEmail(req, now)
	require.NoError(t, err)
	second, err := ComposeInquiryEmail(req, now)
	require.NoError(t, err)

	// Composing must not mutate the request
	assert.Equal(t, first.Subject, second.Subject)
	assert.Equal(t, string(first.Text), string(second.Text))
	assert.Equal(t, "Jane", req.FirstName)
}
