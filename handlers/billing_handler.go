package handlers

import (
	"crypto/subtle"

	"premium-blog-api/config"
	"premium-blog-api/helper"
	"premium-blog-api/models"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type BillingHandler struct {
	billingService services.BillingService
	accountService services.AccountService
	cfg            config.BillingConfig
	Helper         *helper.HTTPHelper
}

func NewBillingHandler(billingService services.BillingService, accountService services.AccountService, cfg config.BillingConfig) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		accountService: accountService,
		cfg:            cfg,
		Helper:         helper.NewHTTPHelper(),
	}
}

func (h *BillingHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.accountService.CurrentUser(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	session, err := h.billingService.Checkout(user, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Checkout session created", session)
}

// Webhook ingests subscription lifecycle events from the billing provider.
// Callers authenticate with a shared secret header, not a user token.
func (h *BillingHandler) Webhook(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.cfg.WebhookSecret)) != 1 {
		h.Helper.SendUnauthorizedError(c, "invalid webhook signature", h.Helper.EmptyJsonMap())
		return
	}

	var event models.SubscriptionWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(event); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.billingService.ApplyWebhook(event); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Event processed", h.Helper.EmptyJsonMap())
}
