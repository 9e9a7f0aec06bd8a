package router

import (
	"log"
	"os"
	"time"

	"github.com/gcgpws/backend-portal/config"
	"github.com/gcgpws/backend-portal/database"
	"github.com/gcgpws/backend-portal/handlers"
	academic_handlers "github.com/gcgpws/backend-portal/handlers/academic"
	admission_handlers "github.com/gcgpws/backend-portal/handlers/admission"
	auth_handlers "github.com/gcgpws/backend-portal/handlers/auth"
	contact_handlers "github.com/gcgpws/backend-portal/handlers/contact"
	facility_handlers "github.com/gcgpws/backend-portal/handlers/facility"
	newsevent_handlers "github.com/gcgpws/backend-portal/handlers/newsevent"
	notification_handlers "github.com/gcgpws/backend-portal/handlers/notification"
	pagecontent_handlers "github.com/gcgpws/backend-portal/handlers/pagecontent"
	studentresource_handlers "github.com/gcgpws/backend-portal/handlers/studentresource"
	upload_handlers "github.com/gcgpws/backend-portal/handlers/upload"
	"github.com/gcgpws/backend-portal/services"
	"github.com/gcgpws/backend-portal/services/storage"
	"github.com/gcgpws/backend-portal/utils/auth"
	"github.com/gcgpws/backend-portal/utils/cache"
	"github.com/gcgpws/backend-portal/utils/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store *database.GORMStore, env *config.EnviornmentVariable) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "gcgpws-portal-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	db := store.DB()

	// Redis backs login brute force protection; without it the API still
	// serves, just unprotected.
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Services
	notificationService := services.NewNotificationService(db)
	emailService := services.NewEmailService(services.EmailConfig{
		Host:     env.SMTP_HOST,
		Port:     env.SMTP_PORT,
		Username: env.SMTP_USERNAME,
		Password: env.SMTP_PASSWORD,
		From:     env.EMAIL_FROM,
	})
	if !emailService.IsConfigured() {
		log.Println("Warning: SMTP is not configured. Applicant emails will be skipped.")
	}
	admissionService := services.NewAdmissionService(db, notificationService, emailService)

	// Object storage is optional in local development
	var spacesClient *storage.SpacesClient
	if env.SPACES_ACCESS_KEY != "" && env.SPACES_SECRET_KEY != "" {
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: env.SPACES_ACCESS_KEY,
			SecretKey: env.SPACES_SECRET_KEY,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
			CDNURL:    env.SPACES_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to create Spaces client: %v. Uploads will be disabled.", err)
		}
	} else {
		log.Println("Warning: Spaces credentials not set. Uploads will be disabled.")
	}

	// Handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	admissionHandler := admission_handlers.NewAdmissionHandler(admissionService)
	notificationHandler := notification_handlers.NewNotificationHandler(notificationService)
	facilityHandler := facility_handlers.NewFacilityHandler(db)
	newsEventHandler := newsevent_handlers.NewNewsEventHandler(db)
	academicHandler := academic_handlers.NewAcademicHandler(db)
	studentResourceHandler := studentresource_handlers.NewStudentResourceHandler(db)
	pageContentHandler := pagecontent_handlers.NewPageContentHandler(db)
	contactHandler := contact_handlers.NewContactHandler(db, notificationService)
	uploadHandler := upload_handlers.NewUploadHandler(spacesClient)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/change-password", authMiddleware.Required(), authHandler.ChangePassword)

	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)

	// Admission routes
	admissions := api.Group("/admissions")
	admissions.Post("/", admissionHandler.Submit)                                                       // Public: Submit application
	admissions.Get("/stats", authMiddleware.Required(), admissionHandler.GetStats)                      // Staff: Dashboard stats
	admissions.Get("/", authMiddleware.Required(), admissionHandler.List)                               // Staff: List applications
	admissions.Get("/:id", authMiddleware.Required(), admissionHandler.GetByID)                         // Staff: Application detail
	admissions.Patch("/:id/status", authMiddleware.RequireAdmin(), admissionHandler.UpdateStatus)       // Admin only: Decide application

	// Notification routes (staff inbox)
	notifications := api.Group("/notifications", authMiddleware.Required())
	notifications.Get("/", notificationHandler.GetNotifications)
	notifications.Get("/unread-count", notificationHandler.GetUnreadCount)
	notifications.Patch("/read-all", notificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", notificationHandler.MarkAsRead)

	// Facility routes
	facilities := api.Group("/facilities")
	facilities.Get("/", facilityHandler.ListFacilities)                                          // Public: List facilities
	facilities.Get("/:id", facilityHandler.GetFacility)                                          // Public: Facility detail
	facilities.Post("/", authMiddleware.RequireAdmin(), facilityHandler.CreateFacility)          // Admin only
	facilities.Put("/:id", authMiddleware.RequireAdmin(), facilityHandler.UpdateFacility)        // Admin only
	facilities.Delete("/:id", authMiddleware.RequireAdmin(), facilityHandler.DeleteFacility)     // Admin only

	// News and events routes
	newsEvents := api.Group("/news-events")
	newsEvents.Get("/", newsEventHandler.ListNewsEvents)                                         // Public: List news/events
	newsEvents.Get("/:id", newsEventHandler.GetNewsEvent)                                        // Public: Entry detail
	newsEvents.Post("/", authMiddleware.RequireAdmin(), newsEventHandler.CreateNewsEvent)        // Admin only
	newsEvents.Put("/:id", authMiddleware.RequireAdmin(), newsEventHandler.UpdateNewsEvent)      // Admin only
	newsEvents.Delete("/:id", authMiddleware.RequireAdmin(), newsEventHandler.DeleteNewsEvent)   // Admin only

	// Academic catalog routes
	academics := api.Group("/academics")
	academics.Get("/", academicHandler.ListPrograms)                                             // Public: List catalog entries
	academics.Get("/:id", academicHandler.GetProgram)                                            // Public: Entry detail
	academics.Post("/", authMiddleware.RequireAdmin(), academicHandler.CreateProgram)            // Admin only
	academics.Put("/:id", authMiddleware.RequireAdmin(), academicHandler.UpdateProgram)          // Admin only
	academics.Delete("/:id", authMiddleware.RequireAdmin(), academicHandler.DeleteProgram)       // Admin only

	// Student portal resource routes
	resources := api.Group("/student-resources")
	resources.Get("/", studentResourceHandler.ListResources)                                     // Public: List resources
	resources.Get("/:id", studentResourceHandler.GetResource)                                    // Public: Resource detail
	resources.Post("/", authMiddleware.RequireAdmin(), studentResourceHandler.CreateResource)    // Admin only
	resources.Put("/:id", authMiddleware.RequireAdmin(), studentResourceHandler.UpdateResource)  // Admin only
	resources.Delete("/:id", authMiddleware.RequireAdmin(), studentResourceHandler.DeleteResource) // Admin only

	// Page content routes
	pages := api.Group("/pages")
	pages.Put("/", authMiddleware.RequireAdmin(), pageContentHandler.UpsertSection)                      // Admin only: Upsert section
	pages.Get("/:page", pageContentHandler.GetPage)                                                      // Public: All sections of a page
	pages.Get("/:page/:section", pageContentHandler.GetSection)                                          // Public: Single section
	pages.Delete("/:page/:section", authMiddleware.RequireAdmin(), pageContentHandler.DeleteSection)     // Admin only

	// Contact form routes
	contact := api.Group("/contact")
	contact.Post("/", contactHandler.Submit)                                                     // Public: Submit message
	contact.Get("/", authMiddleware.Required(), contactHandler.List)                             // Staff: List messages
	contact.Delete("/:id", authMiddleware.RequireAdmin(), contactHandler.Delete)                 // Admin only

	// File uploads
	api.Post("/uploads", uploadHandler.Upload)
	api.Delete("/uploads", authMiddleware.RequireAdmin(), uploadHandler.DeleteFile) // Admin only: Remove stored file
}
