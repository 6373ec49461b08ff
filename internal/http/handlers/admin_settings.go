package handlers

import (
	"net/http"

	"tokrecharge_api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSiteSettings(c *gin.Context) {
	settings, err := h.Store.GetSiteSettings(c.Request.Context())
	if err != nil {
		storeError(c, err, "settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

type updateSettingRequest struct {
	// Value is required but may be empty, so presence is checked via pointer.
	Value *string `json:"value" binding:"required"`
}

// UpdateSiteSetting changes the value of an existing key. Unknown keys are a
// 404; new keys are seeded, not created through the API.
func (h *Handler) UpdateSiteSetting(c *gin.Context) {
	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	setting, err := h.Store.UpdateSiteSetting(c.Request.Context(), c.Param("key"), *req.Value)
	if err != nil {
		storeError(c, err, "setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Handler) ListCoinRatesAdmin(c *gin.Context) {
	rates, err := h.Store.GetCoinRates(c.Request.Context())
	if err != nil {
		storeError(c, err, "coin rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

type updateCoinRateRequest struct {
	Rate string `json:"rate" binding:"required"`
}

func (h *Handler) UpdateCoinRate(c *gin.Context) {
	var req updateCoinRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rate is required"})
		return
	}

	rate, err := h.Store.UpdateCoinRate(c.Request.Context(), c.Param("currency"), req.Rate)
	if err != nil {
		storeError(c, err, "coin rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *Handler) ListCommissionSettings(c *gin.Context) {
	settings, err := h.Store.GetCommissionSettings(c.Request.Context())
	if err != nil {
		storeError(c, err, "commission settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateCommissionSetting(c *gin.Context) {
	var patch domain.CommissionSettingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	setting, err := h.Store.UpdateCommissionSetting(c.Request.Context(), c.Param("platform"), patch)
	if err != nil {
		storeError(c, err, "commission setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}
