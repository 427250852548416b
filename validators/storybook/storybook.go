package storybookValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"
	"skillforge/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateStorybookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
	PDFURL      string `json:"pdf_url" validate:"required,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

func StorybookID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid storybook ID format!", nil)
		}
		c.Locals("storybookID", uint(id))
		return c.Next()
	}
}

func CreateStorybook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStorybookRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedStorybook", reqData)
		return c.Next()
	}
}
