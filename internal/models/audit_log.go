package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Which entity? ("service", "gallery_image", "report_day")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	// UUID for services and gallery images, the day key for roster saves
	EntityID string `gorm:"size:64;index" json:"entity_id"`

	Action AuditAction `gorm:"size:20" json:"action"`

	// Short human-readable summary
	Description string `gorm:"size:255" json:"description"`

	// Entity state before and after the change (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
