package controllers

import (
	"skillforge/authz"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseLessons lists a course's lessons ordered by lesson order.
// Public; returns metadata only, content access is gated on the
// single-lesson read.
func GetCourseLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var lessons []models.Lesson
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("lesson_order asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// GetLessonByID returns a single lesson with its content. Restricted
// to the course's instructor, admins, and enrolled students. Content
// view resolves ownership through the course, not the lesson creator.
func GetLessonByID(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, lesson.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course data for this lesson is missing!", nil)
	}

	if err := authz.ViewContent(principal, course.InstructorID, isEnrolled(principal.ID, course.ID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// CreateLesson adds a lesson to a course. The caller must own the
// course or be an admin; the lesson records the caller as its
// instructor.
func CreateLesson(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := authz.ManageResource(principal, course.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		CourseID:     course.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		VideoURL:     reqData.VideoURL,
		ImageURL:     reqData.ImageURL,
		Content:      reqData.Content,
		ExternalURL:  reqData.ExternalURL,
		Order:        reqData.Order,
		InstructorID: principal.ID,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates a lesson. Authorization resolves against the
// lesson's own instructor, not the course owner.
func UpdateLesson(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := authz.ManageResource(principal, lesson.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Description != "" {
		lesson.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}
	if reqData.ImageURL != "" {
		lesson.ImageURL = reqData.ImageURL
	}
	if reqData.Content != "" {
		lesson.Content = reqData.Content
	}
	if reqData.ExternalURL != "" {
		lesson.ExternalURL = reqData.ExternalURL
	}
	if reqData.Order != nil {
		lesson.Order = *reqData.Order
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson deletes a lesson and its progress records. Authorization
// resolves against the lesson's own instructor.
func DeleteLesson(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := authz.ManageResource(principal, lesson.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	db := database.Database.Db
	if err := db.Where("lesson_id = ?", lesson.ID).Delete(&models.UserProgress{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson progress!", nil)
	}
	if err := db.Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
