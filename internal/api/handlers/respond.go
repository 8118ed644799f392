package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medal_stats/internal/service"
)

const (
	msgCountryLength = "Código de país deve ter 3 caracteres."
	msgInternal      = "Erro interno do servidor."
)

// respondError 把 service 的錯誤轉成 HTTP 回應，內部細節只留在日誌
func respondError(c *gin.Context, err error, notFoundMsg string) {
	_ = c.Error(err)

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}

// badRequest 回應 400，並把綁定錯誤記到 context 上
func badRequest(c *gin.Context, err error, msg string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
