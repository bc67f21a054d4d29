package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"qryptogenia-api/internal/handler"
	"qryptogenia-api/internal/middleware"
	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"
	"qryptogenia-api/internal/seed"
	"qryptogenia-api/internal/service"
	"qryptogenia-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := model.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	roleRepo := repository.NewRoleRepo(db)
	permRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Seed built-in roles, permission catalog and admin user
	if err := seed.New(roleRepo, permRepo, userRepo).Run(); err != nil {
		log.Printf("Warning: Failed to seed defaults: %v", err)
	}

	roleService := service.NewRoleService(roleRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	roleHandler := handler.NewRoleHandler(roleService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "QRyptogenia API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Role Routes
	roles := protected.Group("/roles")
	roles.Post("/create", roleHandler.CreateRole)
	roles.Put("/update", roleHandler.UpdateRole)
	roles.Get("/getAll", roleHandler.GetRoles)

	// Permissions Route (list the catalog)
	protected.Get("/permissions", func(c *fiber.Ctx) error {
		permissions, err := permRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch permissions"})
		}
		return c.JSON(permissions)
	})

	// User Management Routes (with permission checks)
	protected.Get("/users", middleware.RequirePermission("user:read"), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission("user:read"), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id/roles", middleware.RequirePermission("user:update"), userHandler.AssignRoles)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
