package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/response"
	"github.com/campusconnect/backend/internal/service"
)

// BillingHandler handles the tuition pages.
type BillingHandler struct {
	billingService *service.BillingService
	paymentService *service.PaymentService
	catalogService *service.CatalogService
	log            zerolog.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(
	billingService *service.BillingService,
	paymentService *service.PaymentService,
	catalogService *service.CatalogService,
	log zerolog.Logger,
) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		paymentService: paymentService,
		catalogService: catalogService,
		log:            logger.Component(log, "billing_handler"),
	}
}

// Billing godoc
// GET /billing
func (h *BillingHandler) Billing(c *gin.Context) {
	id := middleware.GetIdentity(c)
	ctx := c.Request.Context()

	enrolled, err := h.catalogService.Enrolled(ctx, id.StudentID)
	if err != nil {
		internalError(c, h.log, err, "Failed to load enrolled courses")
		return
	}
	summary, err := h.billingService.Compute(ctx, id.StudentID)
	if err != nil {
		internalError(c, h.log, err, "Failed to compute billing")
		return
	}

	response.View(c, billingView{
		Identity: newIdentityView(id),
		Enrolled: enrolled,
		Billing:  summary,
	})
}

// Pay godoc
// POST /pay
// Pays the outstanding remainder with the submitted payment method.
func (h *BillingHandler) Pay(c *gin.Context) {
	id := middleware.GetIdentity(c)

	// Method is optional; the service defaults and truncates it.
	payment, err := h.paymentService.Pay(c.Request.Context(), id.StudentID, c.PostForm("payment_method"))
	switch {
	case err == nil:
		response.AddNotice(c, response.SeveritySuccess, "",
			fmt.Sprintf("Payment of %s received via %s. Your balance is now PAID.", formatMoney(payment.AmountPaid), payment.PaymentMethod))
	case addServiceNotice(c, err):
	default:
		internalError(c, h.log, err, "Failed to record payment")
		return
	}
	response.Redirect(c, "/billing")
}
