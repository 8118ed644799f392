package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medal_stats/internal/service"
)

// CategoryHandler 處理運動類別列表
type CategoryHandler struct {
	sportService *service.SportService
}

func NewCategoryHandler(sportService *service.SportService) *CategoryHandler {
	return &CategoryHandler{sportService: sportService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	sports, err := h.sportService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": sports})
}
