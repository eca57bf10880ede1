package handlers

import (
	"coinkeep/internal/middleware"
	"coinkeep/internal/services/stats"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type StatisticsHandler struct {
	statsService stats.Service
}

func NewStatisticsHandler(statsService stats.Service) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

// GetStatistics returns platform totals; only the admin key may call
// this.
func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	apiKey := middleware.APIKeyFrom(c)

	statistics, err := h.statsService.Statistics(c.Context(), apiKey)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, statistics)
}
