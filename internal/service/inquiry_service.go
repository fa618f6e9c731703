package service

import (
	"context"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
)

// CaptchaVerifier checks that a submission token was issued to a human
type CaptchaVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

// Mailer dispatches composed inquiry emails through a relay
type Mailer interface {
	CheckConfig() error
	Verify(ctx context.Context) error
	Send(ctx context.Context, email *OutboundEmail) error
}

// InquiryService runs the submission pipeline: CAPTCHA verification, mail
// configuration check, transport pre-flight, composition and dispatch. The
// two network calls are strictly sequential; mail is never sent before
// verification succeeds, and nothing is retried.
type InquiryService struct {
	captcha CaptchaVerifier
	mailer  Mailer
	now     func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(captcha CaptchaVerifier, mailer Mailer) *InquiryService {
	return &InquiryService{
		captcha: captcha,
		mailer:  mailer,
		now:     time.Now,
	}
}

// Submit relays a validated inquiry as an email to the configured recipient.
// The request is expected to have passed field validation already; this is
// the authoritative end of the pipeline.
func (s *InquiryService) Submit(ctx context.Context, req *inquiry.InquiryRequest) error {
	if err := s.captcha.VerifyToken(ctx, req.RecaptchaToken); err != nil {
		return err
	}

	if err := s.mailer.CheckConfig(); err != nil {
		return err
	}

	if err := s.mailer.Verify(ctx); err != nil {
		return err
	}

	email, err := ComposeInquiryEmail(req, s.now())
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, email)
}
