package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gcgpws/backend-portal/api"
	"github.com/gcgpws/backend-portal/config"
	"github.com/gcgpws/backend-portal/database"
	"github.com/gcgpws/backend-portal/router"
	"github.com/gcgpws/backend-portal/services"
	"github.com/gcgpws/backend-portal/services/cron"
)

func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to run database migrations")
		return err
	}

	// Seed the initial admin account if ADMIN_EMAIL/ADMIN_PASSWORD are set
	seeder := database.NewSeeder(store.DB())
	if err := seeder.SeedAll(); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	// Background jobs default to enabled
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		notificationService := services.NewNotificationService(store.DB())
		cronManager = cron.NewCronManager(store.DB(), notificationService)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT))
	app := server.GetEngine()

	router.SetupRoutes(app, store, env)

	return server.Run()
}
