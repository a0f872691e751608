package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/pkg/response"
	"github.com/savelife-bd/savelife-server/pkg/validation"
)

type PaymentHandler struct {
	Svc    *application.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *application.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type checkoutRequest struct {
	DonateAmount string `json:"donateAmount" binding:"required"`
	DonorName    string `json:"donorName" binding:"required"`
	DonorEmail   string `json:"donorEmail" binding:"required,email"`
}

// CreateCheckout opens a processor-hosted checkout session and returns the
// redirect URL. Nothing is written to the store at this phase.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	url, err := h.Svc.CreateCheckout(c.Request.Context(), application.CheckoutInput{
		DonateAmount: req.DonateAmount,
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidAmount) {
			response.Error[any](c, http.StatusBadRequest, "invalid donation amount", nil)
			return
		}
		renderError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"url": url}, "checkout session created", nil)
}

type confirmPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// ConfirmPayment reconciles a checkout session into the payments ledger.
// An unpaid session is an explicit, successful "not confirmed" outcome,
// not an error and not silence.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.ConfirmCheckout(c.Request.Context(), req.SessionID)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	if !res.Confirmed {
		response.Success[any](c, http.StatusOK, gin.H{"confirmed": false}, "payment not confirmed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"confirmed": true, "payment": res.Record}, "payment confirmed", nil)
}
