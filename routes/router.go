package routes

import (
	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/handlers"
	"github.com/abdul-nishar/Entertainment-API/middleware"
	"github.com/abdul-nishar/Entertainment-API/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(app *fiber.App, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db, mailer.NewClient(config.LoadEmailConfig()))
	userHandler := handlers.NewUserHandler(db)
	protect := middleware.Protect(db)

	api := app.Group("/api/v1")

	// ----- USERS / AUTH -----
	users := api.Group("/users")
	users.Post("/signup", authHandler.Signup)
	users.Post("/login", authHandler.Login)
	users.Get("/logout", authHandler.Logout)
	users.Post("/forgotPassword", authHandler.ForgotPassword)
	users.Patch("/resetPassword/:token", authHandler.ResetPassword)

	// Everything below requires a valid session.
	users.Use(protect)
	users.Get("/me", userHandler.GetMe)
	users.Patch("/updateMe", userHandler.UpdateMe)
	users.Delete("/deleteMe", userHandler.DeleteMe)
	users.Patch("/updatePassword", authHandler.UpdatePassword)

	// Account administration is admin-only.
	users.Use(middleware.RequireAdmin())
	users.Get("/", userHandler.AdminListUsers)
	users.Post("/", userHandler.AdminCreateUser)
	users.Get("/:id", userHandler.AdminGetUserByID)
	users.Patch("/:id", userHandler.AdminUpdateUser)
	users.Delete("/:id", userHandler.AdminDeleteUser)

	// ----- ENTERTAINMENT CATALOG -----
	entertainment := api.Group("/entertainment")
	entertainment.Get("/", handlers.ListEntertainment)
	entertainment.Post("/", handlers.CreateEntertainment)
	entertainment.Post("/uploads/poster", protect, middleware.RequireAdmin(), handlers.UploadPoster)
	entertainment.Get("/:id", handlers.GetEntertainmentByID)
	entertainment.Patch("/:id", handlers.UpdateEntertainment)
	entertainment.Delete("/:id", handlers.DeleteEntertainment)

	// Nested reviews for one title.
	entertainment.Get("/:entertainmentId/reviews", protect, handlers.ListReviews)
	entertainment.Post("/:entertainmentId/reviews", protect, handlers.CreateReview)

	// ----- REVIEWS -----
	reviews := api.Group("/reviews")
	reviews.Use(protect)
	reviews.Get("/", handlers.ListReviews)
	reviews.Post("/", handlers.CreateReview)
	reviews.Get("/:id", handlers.GetReviewByID)
	reviews.Patch("/:id", handlers.UpdateReview)
	reviews.Delete("/:id", handlers.DeleteReview)

	// ----- WATCHLIST -----
	watchlist := api.Group("/watchlist")
	watchlist.Use(protect)
	watchlist.Get("/", handlers.GetMyWatchlist)
	watchlist.Post("/", handlers.AddToWatchlist)
	watchlist.Delete("/:id", handlers.RemoveFromWatchlist)
}
