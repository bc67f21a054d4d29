package main

import (
	"log"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"
	"qryptogenia-api/internal/seed"
	"qryptogenia-api/pkg/database"

	"github.com/joho/godotenv"
)

// One-shot seeder. Runs the same idempotent procedure the API runs at startup,
// for provisioning a database outside the request path.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := model.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	roleRepo := repository.NewRoleRepo(db)
	permRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := seed.New(roleRepo, permRepo, userRepo).Run(); err != nil {
		log.Fatal("Seed failed: ", err)
	}
}
