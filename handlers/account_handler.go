package handlers

import (
	"premium-blog-api/helper"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService services.AccountService
	Helper         *helper.HTTPHelper
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		Helper:         helper.NewHTTPHelper(),
	}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	user, err := h.accountService.CurrentUser(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

// Refresh re-pulls subscription state from the billing provider. Clients call
// this after returning from checkout, possibly more than once while the
// provider catches up.
func (h *AccountHandler) Refresh(c *gin.Context) {
	user, err := h.accountService.Refresh(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile refreshed", user)
}

func (h *AccountHandler) ElevateToPremium(c *gin.Context) {
	user, err := h.accountService.ElevateToPremium(c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Premium access granted", user)
}
