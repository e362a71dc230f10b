package config

import (
	"Culinary-Alchemy/internal/api/handlers"
	"Culinary-Alchemy/internal/api/routes"
	"Culinary-Alchemy/internal/middleware"
	"Culinary-Alchemy/internal/utils"
	"Culinary-Alchemy/internal/utils/mailing"
	"Culinary-Alchemy/internal/utils/storage"
	"Culinary-Alchemy/pkg/catalog"
	"Culinary-Alchemy/pkg/jwt"
	"Culinary-Alchemy/pkg/recipe"
	"Culinary-Alchemy/pkg/user"
	"fmt"
	"os"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: !utils.IsProduction(),
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
	}))

	prometheus := fiberprometheus.New("culinary-alchemy")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, catalogRepository, s3, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	assetHandler := handlers.NewAssetHandler(s3)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		CatalogHandler: catalogHandler,
		AssetHandler:   assetHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
