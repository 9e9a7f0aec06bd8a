package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gcgpws/backend-portal/database"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("GCGPWS College Portal - Database Seeding")
	fmt.Println(separator)

	seeder := database.NewSeeder(store.DB())
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Seeding completed successfully.")
	fmt.Println("Admin user is created from ADMIN_EMAIL and ADMIN_PASSWORD; if unset, it is skipped.")
}
