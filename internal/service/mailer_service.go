package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/jhillyerd/enmime"
)

// fromName is the display name on outbound inquiry emails
const fromName = "Website Contact Form"

// MailConfig holds SMTP relay configuration
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// OutboundEmail is a composed message ready for dispatch. From and To come
// from the relay configuration; ReplyTo is the visitor's address so the
// recipient can respond directly.
type OutboundEmail struct {
	Subject string
	ReplyTo string
	HTML    []byte
	Text    []byte
}

// MailerService dispatches inquiry emails through the configured SMTP relay.
// Each send uses its own session; nothing is shared between requests.
type MailerService struct {
	config  MailConfig
	timeout time.Duration
}

// NewMailerService creates a new mailer service
func NewMailerService(config MailConfig) *MailerService {
	return &MailerService{
		config:  config,
		timeout: 10 * time.Second,
	}
}

// CheckConfig reports whether all mandatory relay settings are present.
// No send is attempted while any of them is missing.
func (s *MailerService) CheckConfig() error {
	var missing []string
	if s.config.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if s.config.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if s.config.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if s.config.To == "" {
		missing = append(missing, "EMAIL_TO")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing settings: %s", ErrMailNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// connect opens an authenticated session with the relay.
// Port 465 means implicit TLS; anything else negotiates STARTTLS.
func (s *MailerService) connect(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
		MinVersion: tls.VersionTLS12,
	}

	dialer := &net.Dialer{Timeout: s.timeout}

	var client *smtp.Client
	if s.config.Port == 465 {
		conn, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to dial TLS: %w", err)
		}
		client = smtp.NewClient(conn)
	} else {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to dial SMTP: %w", err)
		}
		client = smtp.NewClient(conn)
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	client.CommandTimeout = s.timeout
	client.SubmissionTimeout = s.timeout

	if s.config.Username != "" && s.config.Password != "" {
		auth := sasl.NewPlainClient("", s.config.Username, s.config.Password)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	return client, nil
}

// Verify pre-flights the relay: dials, authenticates and closes the session
// without sending anything. A failure here means the relay is misconfigured
// or unreachable and the send must not be attempted.
func (s *MailerService) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailPreflight, err)
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("%w: relay NOOP failed: %v", ErrMailPreflight, err)
	}

	return client.Quit()
}

// Send builds the MIME envelope and dispatches it through the relay
func (s *MailerService) Send(ctx context.Context, email *OutboundEmail) error {
	envelope, err := s.buildEnvelope(email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	client, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	defer client.Close()

	if err := client.Mail(s.config.From, nil); err != nil {
		return fmt.Errorf("%w: MAIL FROM rejected: %v", ErrMailDelivery, err)
	}
	if err := client.Rcpt(s.config.To, nil); err != nil {
		return fmt.Errorf("%w: RCPT TO rejected: %v", ErrMailDelivery, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA rejected: %v", ErrMailDelivery, err)
	}
	if _, err := w.Write(envelope); err != nil {
		w.Close()
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	return client.Quit()
}

// buildEnvelope renders the multipart HTML+text message
func (s *MailerService) buildEnvelope(email *OutboundEmail) ([]byte, error) {
	builder := enmime.Builder().
		From(fromName, s.config.From).
		To("", s.config.To).
		ReplyTo("", email.ReplyTo).
		Subject(email.Subject).
		HTML(email.HTML).
		Text(email.Text)

	part, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("cannot build outbound email: %w", err)
	}

	var envelope bytes.Buffer
	if err := part.Encode(&envelope); err != nil {
		return nil, fmt.Errorf("cannot encode outbound email: %w", err)
	}
	return envelope.Bytes(), nil
}
