package courseRoutes

import (
	controllers "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	validators "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, lesson, quiz, enrollment and
// progress routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course catalog (public)
	courseGroup.Get("/list", controllers.GetAllCourses)

	// Course management
	courseGroup.Get("/my/taught", middleware.JWTMiddleware, middleware.LoadPrincipal, middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin), controllers.GetMyTaughtCourses)
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseByID)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.CourseID(), controllers.DeleteCourse)

	// Lessons
	courseGroup.Get("/:courseId/lessons", validators.LessonCourseID(), controllers.GetCourseLessons)
	courseGroup.Post("/:courseId/lesson", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.LessonCourseID(), validators.CreateLesson(), controllers.CreateLesson)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.LessonID(), controllers.GetLessonByID)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.LessonID(), validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.LessonID(), controllers.DeleteLesson)

	// Quizzes
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/create", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.CreateQuiz(), controllers.CreateQuiz)
	quizGroup.Get("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.QuizID(), controllers.GetQuizByID)
	quizGroup.Put("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.QuizID(), validators.UpdateQuiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.QuizID(), controllers.DeleteQuiz)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.QuizID(), validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Enrollment
	enrollGroup := app.Group("/enrollment")
	enrollGroup.Post("/:userId/:courseId", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.EnrollmentParams(), controllers.EnrollInCourse)
	enrollGroup.Delete("/:userId/:courseId", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.EnrollmentParams(), controllers.UnenrollFromCourse)
	enrollGroup.Get("/:userId/:courseId", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.EnrollmentParams(), controllers.CheckEnrollment)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, middleware.LoadPrincipal, controllers.GetMyEnrolledCourses)

	// Progress
	progressGroup := app.Group("/progress")
	progressGroup.Post("/lesson/:lessonId/complete", middleware.JWTMiddleware, middleware.LoadPrincipal, middleware.RequireRoles(models.RoleStudent), validators.ProgressLessonID(), controllers.MarkLessonComplete)
	progressGroup.Get("/course/:courseId", middleware.JWTMiddleware, middleware.LoadPrincipal, validators.ProgressCourseID(), controllers.GetCourseProgress)
}
