package courseValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"
	"skillforge/models"
	"skillforge/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description" validate:"required,min=5"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	Title       string   `json:"title" validate:"omitempty,min=3"`
	Description string   `json:"description" validate:"omitempty,min=5"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
}

// paramID parses a named route parameter as a positive integer id and
// stores it in Locals under key.
func paramID(param, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(param))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID format!", nil)
		}
		c.Locals(key, uint(id))
		return c.Next()
	}
}

func CourseID() fiber.Handler { return paramID("id", "courseID") }

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		if reqData.Category != "" && !models.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown course category!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		if reqData.Category != "" && !models.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown course category!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
