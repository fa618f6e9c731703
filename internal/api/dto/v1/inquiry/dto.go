package inquiry

import "strings"

// Purposes is the fixed set of inquiry categories offered by the website form.
// The server accepts submissions without a purpose; the set is enforced on the
// client side only.
var Purposes = []string{
	"General Information",
	"Service and Solution Information",
	"Investor Relations",
	"Consultant Relations",
	"Media Relations",
	"Careers",
	"Website Feedback",
}

// InquiryRequest represents a contact form submission from the website
type InquiryRequest struct {
	InquiryPurpose string `json:"inquiryPurpose" validate:"max=100"`
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Company        string `json:"company" validate:"required,max=200"`
	Title          string `json:"title" validate:"max=200"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone" validate:"required,max=50"`
	Message        string `json:"message" validate:"max=4000"`
	RecaptchaToken string `json:"recaptchaToken" validate:"required"`
}

// Normalized returns a copy with surrounding whitespace stripped from every
// field. The message keeps its inner newlines.
func (r InquiryRequest) Normalized() InquiryRequest {
	r.InquiryPurpose = strings.TrimSpace(r.InquiryPurpose)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Company = strings.TrimSpace(r.Company)
	r.Title = strings.TrimSpace(r.Title)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.RecaptchaToken = strings.TrimSpace(r.RecaptchaToken)
	return r
}

// InquiryResponse represents the response after submitting an inquiry
type InquiryResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
