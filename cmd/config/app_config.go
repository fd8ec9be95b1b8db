package config

import (
	"os"
	"time"

	"Masterchef-Web/internal/api/handlers"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/api/routes"
	"Masterchef-Web/internal/logging"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/internal/utils"
	"Masterchef-Web/pkg/backend"
	"Masterchef-Web/pkg/categories"
	"Masterchef-Web/pkg/components"
	"Masterchef-Web/pkg/pdf"
	"Masterchef-Web/pkg/recipes"
	"Masterchef-Web/pkg/session"
	"Masterchef-Web/pkg/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	zapLog, err := logging.NewLogger(utils.GetConfigBool("DEVELOPMENT"))
	if err != nil {
		return nil, err
	}

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))
	app.Static("/static", "./web/static")

	// external backend client
	backendConfig := backend.DefaultConfig()
	if url := utils.GetConfig("BACKEND_API_URL"); url != "" {
		backendConfig.BaseURL = url
	}
	if seconds := utils.GetConfigInt("BACKEND_TIMEOUT_SECONDS"); seconds > 0 {
		backendConfig.Timeout = time.Duration(seconds) * time.Second
	}
	backendClient, err := backend.NewClient(backendConfig, zapLog)
	if err != nil {
		return nil, err
	}

	cookieName := utils.GetConfig("SESSION_COOKIE")
	if cookieName == "" {
		cookieName = "masterchef_session"
	}
	ttl := 24 * time.Hour
	if hours := utils.GetConfigInt("SESSION_TTL_HOURS"); hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}

	// Repository
	sessionRepository := session.NewSessionRepository(db)

	// Service
	sessionService := session.NewSessionService(sessionRepository, backendClient, ttl, zapLog)
	recipeService := recipes.NewRecipeService(backendClient)
	componentService := components.NewComponentService(backendClient)
	categoryService := categories.NewCategoryService(backendClient)
	userService := users.NewUserService(backendClient)
	pdfService := pdf.NewPDFService(backendClient)

	middlewares := middleware.NewMiddleware(sessionService, cookieName, utils.GetConfigBool("COOKIE_SECURE"), ttl)
	presenter := presenters.NewPresenter(sessionService)

	// Handler
	authHandler := handlers.NewAuthHandler(sessionService, backendClient, presenter, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, categoryService, presenter, validator, zapLog)
	componentHandler := handlers.NewComponentHandler(componentService, sessionService, presenter)
	categoryHandler := handlers.NewCategoryHandler(categoryService, presenter)
	userHandler := handlers.NewUserHandler(userService, recipeService, sessionService, presenter, validator, zapLog)
	pdfHandler := handlers.NewPDFHandler(pdfService, presenter, zapLog)
	pageHandler := handlers.NewPageHandler(presenter)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		RecipeHandler:    recipeHandler,
		ComponentHandler: componentHandler,
		CategoryHandler:  categoryHandler,
		UserHandler:      userHandler,
		PDFHandler:       pdfHandler,
		PageHandler:      pageHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
