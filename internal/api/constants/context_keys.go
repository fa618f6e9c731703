package constants

// Context keys for validated requests
const (
	// Inquiry context keys
	ContextKeyInquiry = "inquiry"

	// Request context keys
	ContextKeyRequestID = "RequestID"
	ContextKeyRawBody   = "rawBody"
)
