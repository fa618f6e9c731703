package inquiryform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
)

func TestClient_SubmitInquiry_Success(t *testing.T) {
	var got inquiry.InquiryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-inquiry", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(inquiry.InquiryResponse{
			Message: "Your inquiry has been sent successfully!",
			Success: true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	result, err := client.SubmitInquiry(context.Background(), &inquiry.InquiryRequest{
		FirstName:      "Mei",
		Email:          "mei@tanakafreight.example",
		RecaptchaToken: "tok",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "Your inquiry has been sent successfully!", result.Message)
	assert.Equal(t, "Mei", got.FirstName)
	assert.Equal(t, "tok", got.RecaptchaToken)
}

func TestClient_SubmitInquiry_ServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(inquiry.InquiryResponse{
			Message: "Missing required fields: firstName",
			Success: false,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.SubmitInquiry(context.Background(), &inquiry.InquiryRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, "Missing required fields: firstName", result.Message)
}

func TestClient_SubmitInquiry_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.SubmitInquiry(context.Background(), &inquiry.InquiryRequest{})

	assert.Error(t, err)
}

func TestStaticToken(t *testing.T) {
	token, err := StaticToken("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = StaticToken("").Token(context.Background())
	assert.Error(t, err)
}
