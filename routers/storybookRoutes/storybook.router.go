package storybookRoutes

import (
	storybookController "skillforge/controllers/storybook"
	"skillforge/middleware"
	storybookValidator "skillforge/validators/storybook"

	"github.com/gofiber/fiber/v2"
)

func SetupStorybookRoutes(app *fiber.App) {
	storybookGroup := app.Group("/storybook")

	storybookGroup.Get("/list", middleware.JWTMiddleware, middleware.LoadPrincipal, storybookController.GetAllStorybooks)
	storybookGroup.Post("/create", middleware.JWTMiddleware, middleware.LoadPrincipal, storybookValidator.CreateStorybook(), storybookController.CreateStorybook)
	storybookGroup.Get("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, storybookValidator.StorybookID(), storybookController.GetStorybookByID)
	storybookGroup.Delete("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, storybookValidator.StorybookID(), storybookController.DeleteStorybook)
}
