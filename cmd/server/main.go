package main

import (
	"log"
	"os"
	"strings"

	"evanails-backend/internal/audit"
	"evanails-backend/internal/auth"
	"evanails-backend/internal/config"
	"evanails-backend/internal/database"
	"evanails-backend/internal/gallery"
	"evanails-backend/internal/payroll"
	"evanails-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if err := os.MkdirAll(cfg.GalleryImagePath, 0o755); err != nil {
		log.Fatalf("Could not create gallery image directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // gallery uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	// CORS origins come in as a comma separated string
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Uploaded gallery images are served straight from disk
	app.Static(gallery.PublicPathPrefix, cfg.GalleryImagePath)

	api := app.Group("/api")

	// Public site
	api.Post("/auth/pin", auth.PinLoginHandler(cfg))
	api.Get("/services", services.ListServicesHandler())
	api.Get("/gallery-images", gallery.ListGalleryImagesHandler())

	// Admin dashboard (PIN token required)
	admin := api.Group("/admin")
	admin.Use(auth.JWTMiddleware(cfg))

	// Service management
	admin.Post("/services", services.CreateServiceHandler())
	admin.Put("/services/:id", services.UpdateServiceHandler())
	admin.Delete("/services/:id", services.DeleteServiceHandler())

	// Gallery management
	admin.Post("/gallery-images", gallery.CreateGalleryImageHandler(cfg))
	admin.Put("/gallery-images/:id", gallery.UpdateGalleryImageHandler(cfg))
	admin.Delete("/gallery-images/:id", gallery.DeleteGalleryImageHandler(cfg))

	// Daily / weekly pay reports
	store := payroll.NewGormStore(database.DB)
	admin.Get("/reports/daily", payroll.GetDailyReportHandler(store))
	admin.Put("/reports/daily", payroll.SaveDailyReportHandler(store))
	admin.Get("/reports/weekly", payroll.GetWeeklyReportHandler(store))
	admin.Get("/reports/weekly/export", payroll.ExportWeeklyReportHandler(store))

	// Audit logs
	admin.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
