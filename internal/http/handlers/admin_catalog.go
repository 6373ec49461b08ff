package handlers

import (
	"net/http"
	"strings"

	"tokrecharge_api/internal/domain"

	"github.com/gin-gonic/gin"
)

// activeOrDefault implements the create-time default: active unless the
// payload explicitly disables the record.
func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

type createToolRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive"`
}

func (h *Handler) CreateTool(c *gin.Context) {
	var req createToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	tool, err := h.Store.CreateTool(c.Request.Context(), domain.Tool{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Category:    req.Category,
		IsActive:    activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "tool")
		return
	}
	c.JSON(http.StatusCreated, tool)
}

func (h *Handler) UpdateTool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.ToolPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	tool, err := h.Store.UpdateTool(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h *Handler) DeleteTool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteTool(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "tool")
		return
	}
	deleted(c, existed, "tool")
}

type createCountryRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Currency string `json:"currency" binding:"required"`
	CoinRate string `json:"coinRate" binding:"required"`
	Flag     string `json:"flag"`
	IsActive *bool  `json:"isActive"`
}

func (h *Handler) CreateCountry(c *gin.Context) {
	var req createCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	country, err := h.Store.CreateCountry(c.Request.Context(), domain.Country{
		Name:     req.Name,
		Code:     strings.ToUpper(req.Code),
		Currency: req.Currency,
		CoinRate: req.CoinRate,
		Flag:     req.Flag,
		IsActive: activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "country")
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (h *Handler) UpdateCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.CountryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if patch.Code != nil {
		upper := strings.ToUpper(*patch.Code)
		patch.Code = &upper
	}

	country, err := h.Store.UpdateCountry(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "country")
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *Handler) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteCountry(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "country")
		return
	}
	deleted(c, existed, "country")
}

type createGiftRequest struct {
	Name         string `json:"name" binding:"required"`
	CoinCost     int    `json:"coinCost" binding:"required,gt=0"`
	DiamondValue int    `json:"diamondValue" binding:"required,gt=0"`
	Category     string `json:"category"`
	Rarity       string `json:"rarity"`
	IsActive     *bool  `json:"isActive"`
}

func (h *Handler) CreateGift(c *gin.Context) {
	var req createGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	gift, err := h.Store.CreateGift(c.Request.Context(), domain.Gift{
		Name:         req.Name,
		CoinCost:     req.CoinCost,
		DiamondValue: req.DiamondValue,
		Category:     req.Category,
		Rarity:       req.Rarity,
		IsActive:     activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "gift")
		return
	}
	c.JSON(http.StatusCreated, gift)
}

func (h *Handler) UpdateGift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.GiftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	gift, err := h.Store.UpdateGift(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "gift")
		return
	}
	c.JSON(http.StatusOK, gift)
}

func (h *Handler) DeleteGift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteGift(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "gift")
		return
	}
	deleted(c, existed, "gift")
}

type createRechargePackageRequest struct {
	CountryID int64  `json:"countryId" binding:"required,gt=0"`
	Coins     int    `json:"coins" binding:"required,gt=0"`
	Price     string `json:"price" binding:"required"`
	Currency  string `json:"currency" binding:"required"`
	IsActive  *bool  `json:"isActive"`
}

func (h *Handler) CreateRechargePackage(c *gin.Context) {
	var req createRechargePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	pkg, err := h.Store.CreateRechargePackage(c.Request.Context(), domain.RechargePackage{
		CountryID: req.CountryID,
		Coins:     req.Coins,
		Price:     req.Price,
		Currency:  req.Currency,
		IsActive:  activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "recharge package")
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *Handler) UpdateRechargePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.RechargePackagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	pkg, err := h.Store.UpdateRechargePackage(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "recharge package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) DeleteRechargePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existed, err := h.Store.DeleteRechargePackage(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "recharge package")
		return
	}
	deleted(c, existed, "recharge package")
}
