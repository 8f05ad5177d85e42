package server

import (
	"text-quiz/internal/config"
	"text-quiz/internal/handler"
	"text-quiz/internal/middleware"
	"text-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// New builds the fiber application with all routes and middleware.
func New(cfg config.ServerConfig, quizService service.QuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// RequestLogger must wrap recover so panics are logged with their status.
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	pageHandler := handler.NewPageHandler(quizService)
	app.Get("/", pageHandler.Index)
	app.Post("/", pageHandler.Submit)

	quizHandler := handler.NewQuizHandler(quizService)
	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz", quizHandler.GenerateQuiz)

	return app
}
