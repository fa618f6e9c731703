package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ChMubasharAli/getpiepay/internal/api/constants"
	"github.com/ChMubasharAli/getpiepay/internal/api/dto/common"
	"github.com/ChMubasharAli/getpiepay/internal/api/dto/v1/inquiry"
	"github.com/ChMubasharAli/getpiepay/internal/logging"
	"github.com/ChMubasharAli/getpiepay/internal/service"
	"github.com/ChMubasharAli/getpiepay/internal/utils"

	"github.com/gin-gonic/gin"
)

const successMessage = "Your inquiry has been sent successfully!"

// InquiryHandler handles website inquiry submissions
type InquiryHandler struct {
	inquiryService *service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// Submit handles POST /api/v1/inquiry/submit with the standard API envelope
func (h *InquiryHandler) Submit(c *gin.Context) {
	h.submit(c, false)
}

// SubmitLegacy handles POST /api/send-inquiry with the flat response shape
// the deployed website frontend expects
func (h *InquiryHandler) SubmitLegacy(c *gin.Context) {
	h.submit(c, true)
}

func (h *InquiryHandler) submit(c *gin.Context, legacy bool) {
	// Get inquiry data from context (set by validation middleware)
	val, exists := c.Get(constants.ContextKeyInquiry)
	if !exists {
		h.fail(c, legacy, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Inquiry data not found in context")
		return
	}

	req, ok := val.(*inquiry.InquiryRequest)
	if !ok {
		h.fail(c, legacy, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid inquiry data format")
		return
	}

	if err := h.inquiryService.Submit(c.Request.Context(), req); err != nil {
		h.failSubmit(c, legacy, err)
		return
	}

	logging.GetGlobalLogger().Info("Inquiry relayed: purpose=%q company=%q", req.InquiryPurpose, req.Company)

	resp := inquiry.InquiryResponse{
		Message: successMessage,
		Success: true,
	}
	if legacy {
		c.JSON(http.StatusOK, resp)
		return
	}
	utils.HandleSuccess(c, resp)
}

// failSubmit maps pipeline errors onto the error taxonomy: CAPTCHA failures
// are client-correctable and carry their reason; configuration and transport
// failures surface as generic 500s with details kept in the server log.
func (h *InquiryHandler) failSubmit(c *gin.Context, legacy bool, err error) {
	switch {
	case errors.Is(err, service.ErrCaptchaRejected):
		h.fail(c, legacy, err, http.StatusBadRequest, common.ErrCodeBadRequest, captchaMessage(err))
	case errors.Is(err, service.ErrCaptchaNotConfigured):
		h.fail(c, legacy, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Server configuration error")
	case errors.Is(err, service.ErrMailNotConfigured):
		h.fail(c, legacy, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Mail server not configured properly")
	case errors.Is(err, service.ErrMailPreflight):
		h.fail(c, legacy, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Email service configuration error")
	default:
		h.fail(c, legacy, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to send your inquiry. Please try again later.")
	}
}

func (h *InquiryHandler) fail(c *gin.Context, legacy bool, err error, status int, code common.ErrorCode, message string) {
	if !legacy {
		utils.HandleAPIError(c, err, status, code, message)
		return
	}

	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		utils.GetRealIP(c),
		status,
		message,
		err,
	)
	c.JSON(status, inquiry.InquiryResponse{
		Message: message,
		Success: false,
	})
}

// captchaMessage extracts the visitor-facing reason from a verification
// failure, dropping the sentinel prefix
func captchaMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrCaptchaRejected.Error()+": ")
	if msg == "" || msg == service.ErrCaptchaRejected.Error() {
		return "reCAPTCHA verification failed"
	}
	return msg
}
