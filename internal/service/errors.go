package service

import "errors"

// Sentinel errors for the service layer. The handler maps these onto HTTP
// statuses: ErrCaptchaRejected is client-correctable (400), the rest are
// server-side failures (500) whose details are logged but never returned to
// the visitor.
var (
	// ErrCaptchaNotConfigured means the reCAPTCHA secret key is absent.
	// Submissions are never silently accepted in that state.
	ErrCaptchaNotConfigured = errors.New("recaptcha not configured")

	// ErrCaptchaRejected marks a failed or unreachable reCAPTCHA
	// verification. The visitor must re-prove and resubmit.
	ErrCaptchaRejected = errors.New("recaptcha rejected")

	// ErrMailNotConfigured means mandatory relay settings are missing.
	ErrMailNotConfigured = errors.New("mail server not configured")

	// ErrMailPreflight marks a failed transport pre-flight; no send was
	// attempted.
	ErrMailPreflight = errors.New("mail transport pre-flight failed")

	// ErrMailDelivery marks a failure while dispatching the email through
	// the relay.
	ErrMailDelivery = errors.New("mail delivery failed")
)
