package middleware

import (
	"net/http"
	"strings"

	"github.com/ChMubasharAli/getpiepay/internal/api/constants"
	"github.com/ChMubasharAli/getpiepay/internal/api/dto/common"
	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
	"github.com/ChMubasharAli/getpiepay/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validation.New(),
	}
}

// ValidateInquiryRequest validates an inquiry submission and stores the
// normalized request in the context for the handler. The server-side check is
// authoritative; whatever the website form validated client-side is
// re-checked here. When legacy is true, errors are reported in the flat
// {success, message} shape of the original endpoint instead of the API
// envelope.
func (m *ValidationMiddleware) ValidateInquiryRequest(legacy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		reject := func(message string) {
			if legacy {
				c.JSON(http.StatusBadRequest, inquiry.InquiryResponse{
					Message: message,
					Success: false,
				})
			} else {
				c.JSON(http.StatusBadRequest, common.NewErrorResponse(
					common.ErrCodeValidation, message, nil,
				))
			}
			c.Abort()
		}

		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			reject("Request body is missing")
			return
		}

		// Bind without tag enforcement; validation runs on the trimmed copy
		// below so whitespace-only fields are caught too.
		var req inquiry.InquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			reject("Invalid request body")
			return
		}

		normalized := req.Normalized()

		if err := m.validate.Struct(normalized); err != nil {
			errs := validation.FormatValidationError(err)

			if missing := validation.MissingFields(errs); len(missing) > 0 {
				reject("Missing required fields: " + strings.Join(missing, ", "))
				return
			}

			for _, e := range errs {
				if e.Field == "email" {
					reject("Invalid email format")
					return
				}
			}

			reject("Invalid request body")
			return
		}

		c.Set(constants.ContextKeyInquiry, &normalized)
		c.Next()
	}
}
