package services

import (
	"fmt"
	"log"
	"math"
	"strings"

	"evanails-backend/internal/audit"
	"evanails-backend/internal/database"
	"evanails-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Pointers so "missing" is distinguishable from 0
	Price        *float64 `json:"price"`
	Category     string   `json:"category"`
	FullSetPrice *float64 `json:"full_set_price"`
	FillInsPrice *float64 `json:"fill_ins_price"`
}

// validate rejects anything the price fields could silently swallow. A price
// that is missing, NaN or non-positive blocks the write instead of being
// coerced to 0.
func (r *ServiceRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if r.Category == "" {
		return fiber.NewError(fiber.StatusBadRequest, "category is required")
	}
	if r.Price == nil || math.IsNaN(*r.Price) || *r.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must be a positive number")
	}
	if r.FullSetPrice != nil && (math.IsNaN(*r.FullSetPrice) || *r.FullSetPrice <= 0) {
		return fiber.NewError(fiber.StatusBadRequest, "full_set_price must be a positive number")
	}
	if r.FillInsPrice != nil && (math.IsNaN(*r.FillInsPrice) || *r.FillInsPrice <= 0) {
		return fiber.NewError(fiber.StatusBadRequest, "fill_ins_price must be a positive number")
	}
	return nil
}

// -------------------------------------------------
// GET /api/services
// -------------------------------------------------
func ListServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var svcs []models.Service
		if err := database.DB.Order("category asc, name asc").Find(&svcs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list services")
		}
		return c.JSON(svcs)
	}
}

// -------------------------------------------------
// POST /api/admin/services
// -------------------------------------------------
func CreateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		svc := models.Service{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Description:  body.Description,
			Price:        *body.Price,
			Category:     body.Category,
			FullSetPrice: body.FullSetPrice,
			FillInsPrice: body.FillInsPrice,
		}

		if err := database.DB.Create(&svc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create service")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "service",
			EntityID:    svc.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Service added: %s - $%.2f", svc.Name, svc.Price),
			After:       svc,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(svc)
	}
}

// -------------------------------------------------
// PUT /api/admin/services/:id
// -------------------------------------------------
func UpdateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var svc models.Service
		if err := database.DB.First(&svc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}

		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		before := svc

		svc.Name = body.Name
		svc.Description = body.Description
		svc.Price = *body.Price
		svc.Category = body.Category
		svc.FullSetPrice = body.FullSetPrice
		svc.FillInsPrice = body.FillInsPrice

		if err := database.DB.Save(&svc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update service")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "service",
			EntityID:    svc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Service updated: %s", svc.Name),
			Before:      before,
			After:       svc,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.JSON(svc)
	}
}

// -------------------------------------------------
// DELETE /api/admin/services/:id
// -------------------------------------------------
func DeleteServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var svc models.Service
		if err := database.DB.First(&svc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}

		if err := database.DB.Delete(&svc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete service")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "service",
			EntityID:    svc.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Service deleted: %s", svc.Name),
			Before:      svc,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
