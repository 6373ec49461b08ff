package handlers

import (
	"net/http"

	"tokrecharge_api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAdsenseAds(c *gin.Context) {
	ads, err := h.Store.GetAdsenseAds(c.Request.Context())
	if err != nil {
		storeError(c, err, "adsense ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

type createAdsenseRequest struct {
	Name     string `json:"name" binding:"required"`
	AdCode   string `json:"adCode" binding:"required"`
	Location string `json:"location" binding:"required,oneof=header sidebar footer inside-tool"`
	IsActive *bool  `json:"isActive"`
}

func (h *Handler) CreateAdsenseAd(c *gin.Context) {
	var req createAdsenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ad, err := h.Store.CreateAdsenseAd(c.Request.Context(), domain.Adsense{
		Name:     req.Name,
		AdCode:   req.AdCode,
		Location: req.Location,
		IsActive: activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "adsense ad")
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *Handler) UpdateAdsenseAd(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.AdsensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ad, err := h.Store.UpdateAdsenseAd(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "adsense ad")
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *Handler) DeleteAdsenseAd(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteAdsenseAd(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "adsense ad")
		return
	}
	deleted(c, existed, "adsense ad")
}
