package gallery

import (
	"fmt"
	"log"
	"path/filepath"

	"evanails-backend/internal/audit"
	"evanails-backend/internal/config"
	"evanails-backend/internal/database"
	"evanails-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// -------------------------------------------------
// GET /api/gallery-images
// -------------------------------------------------
func ListGalleryImagesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var images []models.GalleryImage
		if err := database.DB.Order("category asc, display_order asc").Find(&images).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list gallery images")
		}
		return c.JSON(images)
	}
}

// nextDisplayOrder returns max(display_order)+1 within category, so new
// images land at the end of their section.
func nextDisplayOrder(category string) (int, error) {
	var maxOrder int
	err := database.DB.Model(&models.GalleryImage{}).
		Where("category = ?", category).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// -------------------------------------------------
// POST /api/admin/gallery-images  (multipart form)
// fields: title, description, category, image (file)
// -------------------------------------------------
func CreateGalleryImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Please select an image file")
		}

		category := c.FormValue("category")
		if category == "" {
			category = "Nail Art"
		}

		fileName := UploadFilename(file.Filename)
		if err := c.SaveFile(file, filepath.Join(cfg.GalleryImagePath, fileName)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not store the image file")
		}

		order, err := nextDisplayOrder(category)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not determine display order")
		}

		img := models.GalleryImage{
			ID:           uuid.NewString(),
			Title:        c.FormValue("title"),
			Description:  c.FormValue("description"),
			ImageURL:     PublicPathPrefix + "/" + fileName,
			Category:     category,
			DisplayOrder: order,
		}

		if err := database.DB.Create(&img).Error; err != nil {
			// The row failed, do not leave the file orphaned
			if rmErr := RemoveStoredImage(cfg.GalleryImagePath, img.ImageURL); rmErr != nil {
				log.Printf("Could not remove stored image %s: %v", img.ImageURL, rmErr)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create gallery image")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "gallery_image",
			EntityID:    img.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Gallery image added: %s (%s)", img.Title, img.Category),
			After:       img,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// -------------------------------------------------
// PUT /api/admin/gallery-images/:id  (multipart form)
// fields: title, description, category, display_order, image (optional file)
// -------------------------------------------------
func UpdateGalleryImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var img models.GalleryImage
		if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Gallery image not found")
		}

		before := img

		if v := c.FormValue("title"); v != "" {
			img.Title = v
		}
		if v := c.FormValue("description"); v != "" {
			img.Description = v
		}
		if v := c.FormValue("category"); v != "" {
			img.Category = v
		}
		if v := c.FormValue("display_order"); v != "" {
			var order int
			if _, err := fmt.Sscan(v, &order); err != nil || order < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "display_order must be a non-negative number")
			}
			img.DisplayOrder = order
		}

		oldURL := img.ImageURL
		if file, err := c.FormFile("image"); err == nil {
			fileName := UploadFilename(file.Filename)
			if err := c.SaveFile(file, filepath.Join(cfg.GalleryImagePath, fileName)); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not store the image file")
			}
			img.ImageURL = PublicPathPrefix + "/" + fileName
		}

		if err := database.DB.Save(&img).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update gallery image")
		}

		// Replaced file is no longer referenced; losing it is not fatal
		if img.ImageURL != oldURL {
			if rmErr := RemoveStoredImage(cfg.GalleryImagePath, oldURL); rmErr != nil {
				log.Printf("Could not remove stored image %s: %v", oldURL, rmErr)
			}
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "gallery_image",
			EntityID:    img.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Gallery image updated: %s", img.Title),
			Before:      before,
			After:       img,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.JSON(img)
	}
}

// -------------------------------------------------
// DELETE /api/admin/gallery-images/:id
// -------------------------------------------------
func DeleteGalleryImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var img models.GalleryImage
		if err := database.DB.First(&img, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Gallery image not found")
		}

		if err := database.DB.Delete(&img).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete gallery image")
		}

		// Best effort: the row is gone, a stranded file only wastes disk
		if rmErr := RemoveStoredImage(cfg.GalleryImagePath, img.ImageURL); rmErr != nil {
			log.Printf("Could not remove stored image %s: %v", img.ImageURL, rmErr)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "gallery_image",
			EntityID:    img.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Gallery image deleted: %s", img.Title),
			Before:      img,
		}); logErr != nil {
			log.Printf("Could not write audit log: %v", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
