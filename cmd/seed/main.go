package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"recipebox/database"
	"recipebox/internal/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func main() {
	numUsers := flag.Int("users", 5, "number of demo users to create")
	cleanup := flag.Bool("cleanup", false, "remove seeded data instead of creating it")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if *cleanup {
		if err := utils.CleanupTestUsers(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		return
	}

	if err := utils.SeedUsers(database.DB, *numUsers); err != nil {
		log.Fatalf("Seeding users failed: %v", err)
	}
	if err := utils.SeedCatalog(database.DB); err != nil {
		log.Fatalf("Seeding catalog failed: %v", err)
	}
	if err := utils.SeedRecipes(database.DB); err != nil {
		log.Fatalf("Seeding recipes failed: %v", err)
	}
}
