package handlers

import (
	"premium-blog-api/helper"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetService services.AssetService
	Helper       *helper.HTTPHelper
}

func NewAssetHandler(assetService services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		Helper:       helper.NewHTTPHelper(),
	}
}

func (h *AssetHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "file is required", h.Helper.EmptyJsonMap())
		return
	}

	url, err := h.assetService.Store(file, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "File uploaded", map[string]interface{}{"url": url})
}
