package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const homePage = "<h1>Hello World - Welcome to our project</h1>"

// Home 回傳靜態歡迎頁
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

// Pinger 是可以檢查連線狀態的依賴，例如資料庫
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 處理存活與就緒檢查
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live 只要程序在運作就回傳 ok
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready 確認資料庫可以連線
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.db.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
