package storybookController

import (
	"log"

	"skillforge/authz"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	storybookValidator "skillforge/validators/storybook"

	"github.com/gofiber/fiber/v2"
)

// GetAllStorybooks lists all storybooks, newest first. Any
// authenticated user.
func GetAllStorybooks(c *fiber.Ctx) error {
	var storybooks []models.Storybook
	if err := database.Database.Db.
		Order("created_at DESC").
		Find(&storybooks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch storybooks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Storybooks fetched successfully!", storybooks)
}

// GetStorybookByID returns a single storybook. Any authenticated user.
func GetStorybookByID(c *fiber.Ctx) error {
	storybookID := c.Locals("storybookID").(uint)

	var storybook models.Storybook
	if err := database.Database.Db.First(&storybook, storybookID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Storybook not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Storybook fetched successfully!", storybook)
}

// CreateStorybook adds a storybook to the library. Admin only.
func CreateStorybook(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := authz.ManageStorybook(principal); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedStorybook").(*storybookValidator.CreateStorybookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	storybook := models.Storybook{
		Title:        reqData.Title,
		Description:  reqData.Description,
		PDFURL:       reqData.PDFURL,
		ImageURL:     reqData.ImageURL,
		UploadedByID: principal.ID,
	}

	if err := database.Database.Db.Create(&storybook).Error; err != nil {
		log.Printf("Error creating storybook: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create storybook!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Storybook created successfully!", storybook)
}

// DeleteStorybook removes a storybook from the library. Admin only.
func DeleteStorybook(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := authz.ManageStorybook(principal); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	storybookID := c.Locals("storybookID").(uint)

	var storybook models.Storybook
	if err := database.Database.Db.First(&storybook, storybookID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Storybook not found!", nil)
	}

	if err := database.Database.Db.Delete(&storybook).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete storybook!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Storybook deleted successfully!", nil)
}
