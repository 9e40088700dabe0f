package audit

import (
	"fmt"

	"evanails-backend/internal/database"
	"evanails-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	EntityType  string             `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/admin/audit-logs?entity_type=service&entity_id=<uuid>&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("entity_type")
		entityID := c.Query("entity_id")

		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			var parsed int
			if _, err := fmt.Sscan(limitStr, &parsed); err != nil || parsed < 1 || parsed > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 500")
			}
			limit = parsed
		}

		dbq := database.DB.Model(&models.AuditLog{})

		if entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityID != "" {
			dbq = dbq.Where("entity_id = ?", entityID)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc, id desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}

		return c.JSON(resp)
	}
}
