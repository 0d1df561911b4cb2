package main

import (
	"athletex/config"
	"athletex/database"
	authRoutes "athletex/routers/authRoutes"
	classRoutes "athletex/routers/classRoutes"
	paymentRoutes "athletex/routers/paymentRoutes"
	selectionRoutes "athletex/routers/selectionRoutes"
	userRoutes "athletex/routers/userRoutes"
	"athletex/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitializeAuditScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AthleteX server is running")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	selectionRoutes.SetupSelectionRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
