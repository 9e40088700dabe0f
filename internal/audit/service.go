package audit

import (
	"encoding/json"
	"fmt"

	"evanails-backend/internal/database"
	"evanails-backend/internal/models"
)

type LogOptions struct {
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// Postgres jsonb wants the literal "null", not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("could not save audit log: %w", err)
	}

	return nil
}
