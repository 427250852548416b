package jobRoutes

import (
	jobController "skillforge/controllers/job"
	"skillforge/middleware"
	jobValidator "skillforge/validators/job"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Get("/list", jobValidator.JobList(), jobController.GetAllJobs)
	jobGroup.Get("/my/posted", middleware.JWTMiddleware, middleware.LoadPrincipal, jobController.GetMyJobs)
	jobGroup.Post("/create", middleware.JWTMiddleware, middleware.LoadPrincipal, jobValidator.CreateJob(), jobController.CreateJob)
	jobGroup.Get("/:id", jobValidator.JobID(), jobController.GetJobByID)
	jobGroup.Put("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, jobValidator.JobID(), jobValidator.UpdateJob(), jobController.UpdateJob)
	jobGroup.Delete("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, jobValidator.JobID(), jobController.DeleteJob)
}
