package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/routes"
	"github.com/abdul-nishar/Entertainment-API/utils"
	"github.com/abdul-nishar/Entertainment-API/utils/fcm"
	"github.com/abdul-nishar/Entertainment-API/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db := config.ConnectDB()

	if os.Getenv("AWS_S3_BUCKET") != "" {
		storage.InitS3Client()
	}

	fcm.Init()
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	defer stopNotifier()
	go fcm.StartNotifierConsumer(notifierCtx)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			return utils.ErrorResponse(c, code, err.Error(), nil)
		},
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(logger.New())
	app.Use("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Hour,
		LimitReached: func(c *fiber.Ctx) error {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "too many requests from this IP, please try again in an hour", nil)
		},
	}))

	routes.Register(app, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API running on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
