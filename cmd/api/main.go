package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"primegate_backend/internal/controller"
	"primegate_backend/internal/middleware"
	"primegate_backend/internal/model"
	"primegate_backend/internal/storage"
	"primegate_backend/pkg/config"
	"primegate_backend/pkg/cron"
	"primegate_backend/pkg/database"
	"primegate_backend/pkg/email"
	"primegate_backend/pkg/seed"
	"primegate_backend/pkg/utils/cloudflare"
	objectstorage "primegate_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public catalog
	api.Get("/properties", controller.ListProperties)
	api.Get("/properties/featured", controller.ListFeaturedProperties)
	api.Get("/properties/type/:type", controller.ListPropertiesByType)
	api.Get("/properties/partner/:partner", controller.ListPropertiesByPartner)
	api.Get("/properties/:id", controller.GetProperty)
	api.Get("/services", controller.ListServices)
	api.Get("/services/:id", controller.GetService)
	api.Get("/partners", controller.ListPartners)

	// Contact form. Submissions are public, reading them is not.
	api.Get("/inquiries", middleware.AuthMiddleware(), middleware.RequireAdmin(), controller.ListInquiries)
	api.Post("/inquiries", controller.CreateInquiry)

	// Auth Routes
	api.Get("/auth/user", middleware.AuthMiddleware(), controller.GetAuthUser)
	api.Post("/auth/logout", middleware.AuthMiddleware(), controller.Logout)

	// Direct browser uploads
	api.Post("/objects/upload", middleware.AuthMiddleware(), controller.PresignUpload)

	// Admin Routes
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
	admin.Post("/properties", controller.CreateProperty)
	admin.Patch("/properties/:id", controller.UpdateProperty)
	admin.Delete("/properties/:id", controller.DeleteProperty)
	admin.Post("/upload", controller.UploadImage)
	admin.Delete("/upload/:id", controller.DeleteImage)

	// PM Tools
	api.Get("/projects", controller.ListProjects)
	api.Post("/projects", controller.CreateProject)
	api.Get("/projects/:id", controller.GetProject)
	api.Get("/releases", controller.ListReleases)
	api.Post("/releases", controller.CreateRelease)
	api.Get("/releases/:id", controller.GetRelease)
	api.Get("/phases", controller.ListPhases)
	api.Post("/phases", controller.CreatePhase)
	api.Get("/phases/:id", controller.GetPhase)
	api.Patch("/phases/:id", controller.UpdatePhase)
	api.Get("/milestones", controller.ListMilestones)
	api.Post("/milestones", controller.CreateMilestone)
	api.Get("/milestones/:id", controller.GetMilestone)
	api.Patch("/milestones/:id", controller.UpdateMilestone)
}

// newApp builds the fiber app with the global error handler and the
// route table. Fiber reports client errors (unknown path, bad method)
// as *fiber.Error; those keep their status code, everything else is a
// server failure.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"message": fiberErr.Message,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)
	return app
}

func main() {
	cfg := config.Load()

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey); err != nil {
			log.Printf("Could not initialize email service: %v", err)
		}
	}

	var store storage.Storage
	if cfg.Database.URL != "" {
		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		err = database.Migrate(
			db,
			&model.Property{},
			&model.Service{},
			&model.Inquiry{},
			&model.Partner{},
			&model.User{},
			&model.Session{},
			&model.Project{},
			&model.Release{},
			&model.Phase{},
			&model.Milestone{},
		)
		if err != nil {
			log.Printf("Migration warning: %v", err)
		}
		store = storage.NewDatabaseStorage(db)
	} else {
		log.Println("DATABASE_URL is not set, using in-memory storage")
		store = storage.NewMemStorage()
	}

	imagesClient := cloudflare.New(cfg.Cloudflare.AccountID, cfg.Cloudflare.APIToken)

	var objectsClient *objectstorage.Client
	if cfg.Objects.AccessKey != "" {
		var err error
		objectsClient, err = objectstorage.New(objectstorage.Options{
			AccountID: cfg.Objects.AccountID,
			AccessKey: cfg.Objects.AccessKey,
			SecretKey: cfg.Objects.SecretKey,
			Bucket:    cfg.Objects.Bucket,
			PublicURL: cfg.Objects.PublicURL,
		})
		if err != nil {
			log.Printf("Could not initialize object storage: %v", err)
		}
	}

	controller.Init(store, controller.Options{
		InquiryInbox: cfg.Email.InquiryInbox,
		Images:       imagesClient,
		Objects:      objectsClient,
	})
	middleware.Init(store, cfg.Session.Secret)

	seed.SeedCatalogs(store)
	cron.InitSessionCleanupCron(store)

	app := newApp()

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
