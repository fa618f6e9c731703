package inquiryform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
)

// SubmitResult is the server's verdict on one submission
type SubmitResult struct {
	Success    bool
	Message    string
	StatusCode int
}

// Client posts inquiries to the server's legacy endpoint, which answers in
// the flat {success, message} shape
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an inquiry API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SubmitInquiry posts the inquiry and decodes the outcome. A non-2xx status
// is not an error; it is returned as an unsuccessful result so the form can
// surface the server's message.
func (c *Client) SubmitInquiry(ctx context.Context, req *inquiry.InquiryRequest) (*SubmitResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inquiry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send-inquiry", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send your message. Please try again: %w", err)
	}
	defer resp.Body.Close()

	var outcome inquiry.InquiryResponse
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &SubmitResult{
		Success:    resp.StatusCode == http.StatusOK && outcome.Success,
		Message:    outcome.Message,
		StatusCode: resp.StatusCode,
	}, nil
}

// StaticToken returns a TokenProvider that always yields the given token.
// It backs the CLI, where the token is pasted in by the operator.
func StaticToken(token string) TokenProvider {
	return staticToken(token)
}

type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", fmt.Errorf("no reCAPTCHA token available")
	}
	return string(t), nil
}

func (t staticToken) Reset() {}
