package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestRecaptchaService(secret, verifyURL string) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 2 * time.Second},
	}
}

func TestVerifyToken_MissingSecret(t *testing.T) {
	s := newTestRecaptchaService("", "http://unused.invalid")

	err := s.VerifyToken(context.Background(), "some-token")
	if !errors.Is(err, ErrCaptchaNotConfigured) {
		t.Fatalf("expected ErrCaptchaNotConfigured, got %v", err)
	}
}

func TestVerifyToken_MissingToken(t *testing.T) {
	s := newTestRecaptchaService("secret", "http://unused.invalid")

	err := s.VerifyToken(context.Background(), "")
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("expected ErrCaptchaRejected, got %v", err)
	}
}

func TestVerifyToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostFormValue("secret") != "secret" {
			t.Errorf("secret = %q, want %q", r.PostFormValue("secret"), "secret")
		}
		if r.PostFormValue("response") != "tok-123" {
			t.Errorf("response = %q, want %q", r.PostFormValue("response"), "tok-123")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "score": 0.9}`))
	}))
	defer srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	if err := s.VerifyToken(context.Background(), "tok-123"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestVerifyToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response", "timeout-or-duplicate"]}`))
	}))
	defer srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	err := s.VerifyToken(context.Background(), "bad-token")
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("expected ErrCaptchaRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid-input-response") {
		t.Errorf("error %q should contain the service's error code", err)
	}
	if !strings.Contains(err.Error(), "timeout-or-duplicate") {
		t.Errorf("error %q should join all error codes", err)
	}
}

func TestVerifyToken_RejectedWithoutCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	err := s.VerifyToken(context.Background(), "bad-token")
	if err == nil || !strings.Contains(err.Error(), "unknown-error") {
		t.Fatalf("expected unknown-error fallback, got %v", err)
	}
}

func TestVerifyToken_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	err := s.VerifyToken(context.Background(), "tok")
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("expected ErrCaptchaRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "network error") {
		t.Errorf("error %q should carry a network-error reason", err)
	}
}

func TestVerifyToken_NetworkError(t *testing.T) {
	// Closed server: the request must fail, and the transport error must be
	// folded into a verification failure rather than propagate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	err := s.VerifyToken(context.Background(), "tok")
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("expected ErrCaptchaRejected, got %v", err)
	}
}

func TestVerifyToken_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := newTestRecaptchaService("secret", srv.URL)
	err := s.VerifyToken(context.Background(), "tok")
	if !errors.Is(err, ErrCaptchaRejected) {
		t.Fatalf("expected ErrCaptchaRejected, got %v", err)
	}
}
