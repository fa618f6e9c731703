package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService() *RecaptchaService {
	return &RecaptchaService{
		secretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
		verifyURL: recaptchaVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// VerifyToken verifies a reCAPTCHA token against the verification service.
//
// A missing secret key is reported as ErrCaptchaNotConfigured; the handler must
// never silently accept in that case. Every other failure, including
// transport and parsing errors on the call to the verification service, is
// folded into ErrCaptchaRejected so it surfaces as a client-correctable
// verification failure rather than an unhandled fault.
func (s *RecaptchaService) VerifyToken(ctx context.Context, token string) error {
	if s.secretKey == "" {
		return fmt.Errorf("%w: RECAPTCHA_SECRET_KEY is not set", ErrCaptchaNotConfigured)
	}

	if token == "" {
		return fmt.Errorf("%w: missing reCAPTCHA token", ErrCaptchaRejected)
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: network error: %v", ErrCaptchaRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: network error: verification service returned status %d", ErrCaptchaRejected, resp.StatusCode)
	}

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to parse verification response: %v", ErrCaptchaRejected, err)
	}

	if !result.Success {
		errorCodes := result.ErrorCodes
		if len(errorCodes) == 0 {
			errorCodes = []string{"unknown-error"}
		}
		return fmt.Errorf("%w: reCAPTCHA failed: %s", ErrCaptchaRejected, strings.Join(errorCodes, ", "))
	}

	return nil
}
