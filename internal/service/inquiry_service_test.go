package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
)

type mockCaptchaVerifier struct {
	verifyFunc func(ctx context.Context, token string) error
	calls      int
}

func (m *mockCaptchaVerifier) VerifyToken(ctx context.Context, token string) error {
	m.calls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, token)
	}
	return nil
}

type mockMailer struct {
	checkConfigFunc func() error
	verifyFunc      func(ctx context.Context) error
	sendFunc        func(ctx context.Context, email *OutboundEmail) error

	checkConfigCalls int
	verifyCalls      int
	sendCalls        int
	lastEmail        *OutboundEmail
}

func (m *mockMailer) CheckConfig() error {
	m.checkConfigCalls++
	if m.checkConfigFunc != nil {
		return m.checkConfigFunc()
	}
	return nil
}

func (m *mockMailer) Verify(ctx context.Context) error {
	m.verifyCalls++
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx)
	}
	return nil
}

func (m *mockMailer) Send(ctx context.Context, email *OutboundEmail) error {
	m.sendCalls++
	m.lastEmail = email
	if m.sendFunc != nil {
		return m.sendFunc(ctx, email)
	}
	return nil
}

func submitRequest() *inquiry.InquiryRequest {
	return &inquiry.InquiryRequest{
		InquiryPurpose: "Request a Demo",
		FirstName:      "Dana",
		LastName:       "Reid",
		Company:        "Reid Logistics",
		Email:          "dana@reidlogistics.example",
		Phone:          "+1 555 0142",
		RecaptchaToken: "tok-123",
	}
}

func TestSubmit_Success(t *testing.T) {
	captcha := &mockCaptchaVerifier{}
	mailer := &mockMailer{}
	svc := NewInquiryService(captcha, mailer)
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC) }

	err := svc.Submit(context.Background(), submitRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, captcha.calls)
	assert.Equal(t, 1, mailer.checkConfigCalls)
	assert.Equal(t, 1, mailer.verifyCalls)
	assert.Equal(t, 1, mailer.sendCalls)
	require.NotNil(t, mailer.lastEmail)
	assert.Equal(t, "New Inquiry: Request a Demo — Reid Logistics", mailer.lastEmail.Subject)
	assert.Equal(t, "dana@reidlogistics.example", mailer.lastEmail.ReplyTo)
}

func TestSubmit_CaptchaRejected(t *testing.T) {
	captcha := &mockCaptchaVerifier{
		verifyFunc: func(ctx context.Context, token string) error {
			return fmt.Errorf("%w: reCAPTCHA failed: timeout-or-duplicate", ErrCaptchaRejected)
		},
	}
	mailer := &mockMailer{}
	svc := NewInquiryService(captcha, mailer)

	err := svc.Submit(context.Background(), submitRequest())

	assert.ErrorIs(t, err, ErrCaptchaRejected)
	assert.Equal(t, 0, mailer.checkConfigCalls)
	assert.Equal(t, 0, mailer.verifyCalls)
	assert.Equal(t, 0, mailer.sendCalls)
}

func TestSubmit_CaptchaTokenPassedThrough(t *testing.T) {
	var gotToken string
	captcha := &mockCaptchaVerifier{
		verifyFunc: func(ctx context.Context, token string) error {
			gotToken = token
			return nil
		},
	}
	svc := NewInquiryService(captcha, &mockMailer{})

	err := svc.Submit(context.Background(), submitRequest())

	require.NoError(t, err)
	assert.Equal(t, "tok-123", gotToken)
}

func TestSubmit_MailNotConfigured(t *testing.T) {
	mailer := &mockMailer{
		checkConfigFunc: func() error {
			return fmt.Errorf("%w: missing SMTP_HOST", ErrMailNotConfigured)
		},
	}
	svc := NewInquiryService(&mockCaptchaVerifier{}, mailer)

	err := svc.Submit(context.Background(), submitRequest())

	assert.ErrorIs(t, err, ErrMailNotConfigured)
	assert.Equal(t, 0, mailer.verifyCalls)
	assert.Equal(t, 0, mailer.sendCalls)
}

func TestSubmit_PreflightFailure(t *testing.T) {
	mailer := &mockMailer{
		verifyFunc: func(ctx context.Context) error {
			return fmt.Errorf("%w: dial tcp: connection refused", ErrMailPreflight)
		},
	}
	svc := NewInquiryService(&mockCaptchaVerifier{}, mailer)

	err := svc.Submit(context.Background(), submitRequest())

	assert.ErrorIs(t, err, ErrMailPreflight)
	assert.Equal(t, 1, mailer.checkConfigCalls)
	assert.Equal(t, 0, mailer.sendCalls)
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	mailer := &mockMailer{
		sendFunc: func(ctx context.Context, email *OutboundEmail) error {
			return fmt.Errorf("%w: 550 mailbox unavailable", ErrMailDelivery)
		},
	}
	svc := NewInquiryService(&mockCaptchaVerifier{}, mailer)

	err := svc.Submit(context.Background(), submitRequest())

	assert.ErrorIs(t, err, ErrMailDelivery)
	assert.Equal(t, 1, mailer.sendCalls)
}
