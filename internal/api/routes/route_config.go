package routes

import (
	"Culinary-Alchemy/internal/api/handlers"
	"Culinary-Alchemy/internal/middleware"
	"Culinary-Alchemy/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	CatalogHandler handlers.CatalogHandler
	AssetHandler   handlers.AssetHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipe()
	c.Catalog()
	c.Asset()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Get("/all", c.UserHandler.GetUsers)
		user.Get("/id/:id", c.UserHandler.GetUserByID)
		user.Get("/username/:username", c.UserHandler.GetUserByUsername)
		user.Post("/email", c.UserHandler.GetUserByEmail)
		user.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Delete("/id/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/meal-types", c.CatalogHandler.GetMealTypes)
	c.App.Get("/api/v1/dietaries", c.CatalogHandler.GetDietaries)
}

func (c *Config) Asset() {
	assets := c.App.Group("/api/v1/assets", c.Middleware.AuthMiddleware(c.JWTService))
	assets.Post("/images", c.AssetHandler.UploadImage)
}
