package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	c.App.Post("/add-recipe", c.RecipeHandler.SubmitRecipe)
	c.App.Get("/get-recipes", c.RecipeHandler.GetRecipes)
	c.App.Put("/update-recipe", c.RecipeHandler.UpdateRecipe)
	c.App.Post("/delete-recipe", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
