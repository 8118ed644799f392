package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"medal_stats/internal/service"
)

// AthleteHandler 處理運動員名單的請求
type AthleteHandler struct {
	athleteService *service.AthleteService
}

func NewAthleteHandler(athleteService *service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// ListByCountry 回傳某國的運動員，每一列都帶有該國運動員總數
func (h *AthleteHandler) ListByCountry(c *gin.Context) {
	var uri countryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err, msgCountryLength)
		return
	}

	rows, err := h.athleteService.ByCountry(c.Request.Context(), uri.Country)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Nenhum atleta encontrado para o NOC '%s'.", uri.Country))
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": rows})
}
