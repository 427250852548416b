package courseValidator

import (
	"strconv"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentParams parses the /:userId/:courseId pair used by the
// enrollment routes.
func EnrollmentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil || userID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID format!", nil)
		}

		courseID, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format!", nil)
		}

		c.Locals("targetUserID", uint(userID))
		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

func ProgressLessonID() fiber.Handler { return paramID("lessonId", "lessonID") }

func ProgressCourseID() fiber.Handler { return paramID("courseId", "courseID") }
