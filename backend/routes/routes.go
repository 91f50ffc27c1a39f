package routes

import (
	"quizapp/backend/config"
	"quizapp/backend/controllers"
	"quizapp/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	protect := middleware.Protect(db, cfg)
	adminOnly := middleware.AdminOnly()

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	auth := app.Group("/api/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Get("/me", protect, authController.GetMe)
	auth.Post("/logout", protect, authController.Logout)

	// Admin user management
	userController := controllers.NewUserController(db, cfg)
	auth.Get("/users", protect, adminOnly, userController.GetAllUsers)
	auth.Put("/users/:id", protect, adminOnly, userController.UpdateUser)
	auth.Delete("/users/:id", protect, adminOnly, userController.DeleteUser)

	// Quiz routes. Static paths are registered before /:id so they are not
	// swallowed by the parameter route.
	quizController := controllers.NewQuizController(db, cfg)
	submissionController := controllers.NewSubmissionController(db, cfg)
	aiController := controllers.NewAIController(cfg)

	quizzes := app.Group("/api/quizzes", protect)
	quizzes.Get("/", quizController.GetAllQuizzes)
	quizzes.Get("/categories", quizController.GetCategories)
	quizzes.Get("/category/:category", quizController.GetQuizzesByCategory)
	quizzes.Get("/submissions", submissionController.GetUserSubmissions)
	quizzes.Get("/ai/status", aiController.GetAIStatus)
	quizzes.Post("/generate/ai", adminOnly, aiController.GenerateQuiz)
	quizzes.Get("/:id", quizController.GetQuiz)
	quizzes.Post("/:id/submit", submissionController.SubmitQuiz)

	// Admin quiz mutation
	quizzes.Post("/", adminOnly, quizController.CreateQuiz)
	quizzes.Put("/:id", adminOnly, quizController.UpdateQuiz)
	quizzes.Delete("/:id", adminOnly, quizController.DeleteQuiz)
}
