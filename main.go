package main

import (
	"log"

	"skillforge/config"
	"skillforge/database"
	adminRoutes "skillforge/routers/adminRoutes"
	authRoutes "skillforge/routers/authRoutes"
	courseRoutes "skillforge/routers/courseRoutes"
	jobRoutes "skillforge/routers/jobRoutes"
	storybookRoutes "skillforge/routers/storybookRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	storybookRoutes.SetupStorybookRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
