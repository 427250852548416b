package controllers

import (
	"skillforge/authz"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// isEnrolled reports whether the user has an enrollment row for the
// course.
func isEnrolled(userID, courseID uint) bool {
	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count)
	return count > 0
}

// EnrollInCourse enrolls a student in a course. Strictly self-service:
// the caller must be a student acting on their own id. Double
// enrollment is a conflict, not a no-op.
func EnrollInCourse(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	courseID := c.Locals("courseID").(uint)

	if err := authz.EnrollSelf(principal, targetUserID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, targetUserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if isEnrolled(user.ID, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID}
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in course!", fiber.Map{
		"enrollment": enrollment,
		"course":     course,
	})
}

// UnenrollFromCourse removes a student's enrollment. Unenrolling from
// a course the student never joined succeeds without an error.
func UnenrollFromCourse(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	courseID := c.Locals("courseID").(uint)

	if err := authz.EnrollSelf(principal, targetUserID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, targetUserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Delete(&models.Enrollment{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unenroll from course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully unenrolled from course!", nil)
}

// GetMyEnrolledCourses lists the courses the authenticated user is
// enrolled in, in enrollment insertion order.
func GetMyEnrolledCourses(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", principal.ID).Order("id asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}
		courses = append(courses, course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", courses)
}

// CheckEnrollment reports whether a user is enrolled in a course.
// Callers may check their own enrollment; admins may check anyone's.
func CheckEnrollment(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetUserID := c.Locals("targetUserID").(uint)
	courseID := c.Locals("courseID").(uint)

	if err := authz.CheckEnrollment(principal, targetUserID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, targetUserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"is_enrolled": isEnrolled(user.ID, courseID),
	})
}
