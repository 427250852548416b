package courseValidator

import (
	"strings"

	"skillforge/middleware"
	"skillforge/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateLessonRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Content     string `json:"content" validate:"max=5000"`
	ExternalURL string `json:"external_url" validate:"omitempty,url"`
	Order       int    `json:"order" validate:"gte=0"`
}

type UpdateLessonRequest struct {
	Title       string `json:"title" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Content     string `json:"content" validate:"max=5000"`
	ExternalURL string `json:"external_url" validate:"omitempty,url"`
	Order       *int   `json:"order" validate:"omitempty,gte=0"`
}

func LessonID() fiber.Handler { return paramID("id", "lessonID") }

func LessonCourseID() fiber.Handler { return paramID("courseId", "courseID") }

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
