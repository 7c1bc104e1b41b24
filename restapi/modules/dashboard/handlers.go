package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/model"
)

// GetStats handles GET /api/dashboard/stats.
func GetStats(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Snapshot(c.Context())
		if err != nil {
			svc.logger.Error("failed to compute dashboard snapshot", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.Fail(err.Error()))
		}
		return c.JSON(model.OK(stats))
	}
}
