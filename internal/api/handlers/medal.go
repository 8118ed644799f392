package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"medal_stats/internal/service"
)

// MedalHandler 處理獎牌統計相關的請求
type MedalHandler struct {
	medalService *service.MedalService
}

// NewMedalHandler 創建一個新的 MedalHandler 實例
func NewMedalHandler(medalService *service.MedalService) *MedalHandler {
	return &MedalHandler{medalService: medalService}
}

type countryURI struct {
	Country string `uri:"country" binding:"len=3"`
}

type topURI struct {
	N int `uri:"n" binding:"gt=0"`
}

type categoryURI struct {
	Category string `uri:"category" binding:"required"`
}

// ListMedals 回傳所有國家的獎牌榜
func (h *MedalHandler) ListMedals(c *gin.Context) {
	rows, err := h.medalService.Ranking(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": rows})
}

// GetCountryMedals 回傳單一國家的獎牌統計
func (h *MedalHandler) GetCountryMedals(c *gin.Context) {
	var uri countryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err, msgCountryLength)
		return
	}

	country, err := h.medalService.Country(c.Request.Context(), uri.Country)
	if err != nil {
		respondError(c, err, fmt.Sprintf("NOC de código '%s' não existe.", uri.Country))
		return
	}

	c.JSON(http.StatusOK, gin.H{"country": country})
}

// TopMedals 回傳前 n 名及各國運動員人數
func (h *MedalHandler) TopMedals(c *gin.Context) {
	var uri topURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err, "Número de medalhas deve ser maior que 0")
		return
	}

	rows, err := h.medalService.Top(c.Request.Context(), uri.N)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": rows})
}

// MedalRatio 回傳金牌比例排行
func (h *MedalHandler) MedalRatio(c *gin.Context) {
	rows, err := h.medalService.Ratio(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": rows})
}

// CategoryMedals 回傳某個運動類別的獎牌榜
func (h *MedalHandler) CategoryMedals(c *gin.Context) {
	var uri categoryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err, "Categoria não pode ser vazia.")
		return
	}

	rows, err := h.medalService.ByCategory(c.Request.Context(), uri.Category)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": rows})
}
