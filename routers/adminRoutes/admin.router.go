package adminRoutes

import (
	adminController "skillforge/controllers/admin"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.LoadPrincipal, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/dashboard/stats", adminController.GetDashboardStats)
}
