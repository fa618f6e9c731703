// Package inquiryform implements the inquiry form controller: field
// validation mirroring the server's checks (for fast feedback only, the
// server remains authoritative), CAPTCHA token handling and a guarded
// single-submission flow against the inquiry endpoint.
package inquiryform

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
	"github.com/ChMubasharAli/getpiepay/internal/api/validation"
)

// State is the lifecycle of one form instance
type State int

const (
	// StateEditing accepts field edits; submission is blocked until
	// validation passes and a CAPTCHA token is present
	StateEditing State = iota
	// StateSubmitting has exactly one outbound request in flight
	StateSubmitting
	// StateSucceeded is terminal for this submission; fields are cleared
	// and the close action fires after CloseDelay
	StateSucceeded
	// StateFailed shows the error notice; any edit returns to StateEditing
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultPurpose is preselected when the form opens or resets
const DefaultPurpose = "General Information"

// CloseDelay is how long a succeeded form stays open before the close
// action fires
const CloseDelay = 2 * time.Second

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not completed
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ErrValidationFailed is returned when submit-time validation blocks the
// request; inspect FieldError, CaptchaError and SummaryError for details
var ErrValidationFailed = errors.New("validation failed")

// TokenProvider yields CAPTCHA proof tokens. Reset discards the current
// challenge so the visitor can re-prove.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Reset()
}

// Submitter posts a composed inquiry to the server
type Submitter interface {
	SubmitInquiry(ctx context.Context, req *inquiry.InquiryRequest) (*SubmitResult, error)
}

// Values holds the editable form fields
type Values struct {
	InquiryPurpose string
	FirstName      string
	LastName       string
	Company        string
	Title          string
	Email          string
	Phone          string
	Message        string
}

// Form is one open instance of the inquiry form
type Form struct {
	mu sync.Mutex

	values      Values
	fieldErrors map[string]string
	summaryErr  string
	captchaErr  string
	successMsg  string
	token       string
	state       State

	provider TokenProvider
	client   Submitter
	onClose  func()
}

// New creates a form in the editing state
func New(client Submitter, provider TokenProvider) *Form {
	return &Form{
		values:      Values{InquiryPurpose: DefaultPurpose},
		fieldErrors: make(map[string]string),
		state:       StateEditing,
		provider:    provider,
		client:      client,
	}
}

// OnClose registers the close action invoked after a successful submission
func (f *Form) OnClose(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onClose = fn
}

// SetValues replaces all fields at once
func (f *Form) SetValues(v Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
	f.editing()
}

// SetField updates a single field by its wire name
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "inquiryPurpose":
		f.values.InquiryPurpose = value
	case "firstName":
		f.values.FirstName = value
	case "lastName":
		f.values.LastName = value
	case "company":
		f.values.Company = value
	case "title":
		f.values.Title = value
	case "email":
		f.values.Email = value
	case "phone":
		f.values.Phone = value
	case "message":
		f.values.Message = value
	}
	f.editing()
}

// HandleBlur runs field-level validation for one field, as the form does on
// loss of focus. At most one error is reported per field.
func (f *Form) HandleBlur(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.validateField(name); err != "" {
		f.fieldErrors[name] = err
	} else {
		delete(f.fieldErrors, name)
	}
}

// SetCaptchaToken records a token issued by the CAPTCHA widget
func (f *Form) SetCaptchaToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.captchaErr = ""
	f.summaryErr = ""
}

// Values returns a copy of the current field values
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// State returns the current lifecycle state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldError returns the validation error for a field, if any
func (f *Form) FieldError(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors[name]
}

// SummaryError returns the inline summary error shown above the submit control
func (f *Form) SummaryError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summaryErr
}

// CaptchaError returns the CAPTCHA-specific error notice, if any
func (f *Form) CaptchaError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.captchaErr
}

// SuccessMessage returns the success notice after a completed submission
func (f *Form) SuccessMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.successMsg
}

// Reset clears all fields and errors and discards the CAPTCHA challenge
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	f.values = Values{InquiryPurpose: DefaultPurpose}
	f.fieldErrors = make(map[string]string)
	f.summaryErr = ""
	f.captchaErr = ""
	f.token = ""
	if f.provider != nil {
		f.provider.Reset()
	}
}

// editing returns a failed form to the editing state on any edit
func (f *Form) editing() {
	if f.state == StateFailed {
		f.state = StateEditing
	}
}

// validateField reports at most one error per field: "required" checks for
// first name, last name, company and phone; the email additionally gets a
// format check
func (f *Form) validateField(name string) string {
	switch name {
	case "firstName", "lastName", "company":
		if strings.TrimSpace(f.fieldValue(name)) == "" {
			return "This field is required"
		}
	case "email":
		email := strings.TrimSpace(f.values.Email)
		if email == "" {
			return "Email is required"
		}
		if !validation.IsValidEmail(email) {
			return "Invalid email format"
		}
	case "phone":
		if strings.TrimSpace(f.values.Phone) == "" {
			return "Phone number is required"
		}
	}
	return ""
}

func (f *Form) fieldValue(name string) string {
	switch name {
	case "firstName":
		return f.values.FirstName
	case "lastName":
		return f.values.LastName
	case "company":
		return f.values.Company
	default:
		return ""
	}
}

// validate recomputes every required field even if it was never blurred,
// and checks that a CAPTCHA token is present
func (f *Form) validate() bool {
	f.fieldErrors = make(map[string]string)
	for _, name := range []string{"firstName", "lastName", "company", "email", "phone"} {
		if err := f.validateField(name); err != "" {
			f.fieldErrors[name] = err
		}
	}
	return len(f.fieldErrors) == 0 && f.token != ""
}

// Submit validates and posts the inquiry. At most one submission is in
// flight at a time; a CAPTCHA-specific rejection resets the widget so the
// visitor can re-prove.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	f.summaryErr = ""
	f.captchaErr = ""
	f.successMsg = ""

	// Obtain a token from the provider when the widget has not pushed one
	if f.token == "" && f.provider != nil {
		f.mu.Unlock()
		token, err := f.provider.Token(ctx)
		f.mu.Lock()
		if err != nil {
			f.captchaErr = "reCAPTCHA failed to load. Please refresh the page and try again."
			f.mu.Unlock()
			return ErrValidationFailed
		}
		f.token = token
	}

	if !f.validate() {
		if f.token == "" {
			f.captchaErr = "Please complete the reCAPTCHA verification."
		}
		f.summaryErr = "Please fix the errors above before submitting."
		f.mu.Unlock()
		return ErrValidationFailed
	}

	req := &inquiry.InquiryRequest{
		InquiryPurpose: f.values.InquiryPurpose,
		FirstName:      strings.TrimSpace(f.values.FirstName),
		LastName:       strings.TrimSpace(f.values.LastName),
		Company:        strings.TrimSpace(f.values.Company),
		Title:          strings.TrimSpace(f.values.Title),
		Email:          strings.TrimSpace(f.values.Email),
		Phone:          strings.TrimSpace(f.values.Phone),
		Message:        strings.TrimSpace(f.values.Message),
		RecaptchaToken: f.token,
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	result, err := f.client.SubmitInquiry(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateFailed
		f.summaryErr = err.Error()
		return err
	}

	if !result.Success {
		f.state = StateFailed
		if strings.Contains(strings.ToLower(result.Message), "recaptcha") {
			// The proof was rejected; discard it and make the visitor re-prove
			f.token = ""
			if f.provider != nil {
				f.provider.Reset()
			}
			f.captchaErr = result.Message
			f.summaryErr = "Security verification failed. Please complete the reCAPTCHA again."
		} else {
			f.summaryErr = result.Message
		}
		return nil
	}

	f.successMsg = result.Message
	f.reset()
	f.state = StateSucceeded

	if f.onClose != nil {
		time.AfterFunc(CloseDelay, f.onClose)
	}

	return nil
}
