package controllers

import (
	"time"

	"skillforge/authz"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// upsertProgress writes the (user, lesson) progress row atomically via
// the composite unique index; concurrent writes for the same pair
// resolve last-write-wins.
func upsertProgress(progress *models.UserProgress) error {
	assignments := map[string]interface{}{
		"course_id":       progress.CourseID,
		"completed":       progress.Completed,
		"completion_date": progress.CompletionDate,
		"updated_at":      time.Now(),
	}
	if progress.QuizAttempted {
		assignments["quiz_score"] = progress.QuizScore
		assignments["quiz_attempted"] = true
	}

	return database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(progress).Error
}

// MarkLessonComplete upserts a completed progress record for the
// caller and the lesson. Enrollment is not verified on this path; the
// client only offers the action to enrolled students.
func MarkLessonComplete(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	now := time.Now()
	progress := models.UserProgress{
		UserID:         principal.ID,
		LessonID:       lesson.ID,
		CourseID:       lesson.CourseID,
		Completed:      true,
		CompletionDate: &now,
	}

	if err := upsertProgress(&progress); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson complete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as complete!", progress)
}

// GetCourseProgress returns lesson completion totals for the caller in
// the given course. Visible to the course's instructor, admins, and
// enrolled students. A course with no lessons reports zero totals.
func GetCourseProgress(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := authz.ViewCourseProgress(principal, course.InstructorID, isEnrolled(principal.ID, course.ID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	var lessons []models.Lesson
	if err := db.Select("id").Where("course_id = ?", course.ID).Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course lessons!", nil)
	}

	progressMap := make(map[uint]bool)
	completedLessons := 0

	if len(lessons) > 0 {
		lessonIDs := make([]uint, len(lessons))
		for i, lesson := range lessons {
			lessonIDs[i] = lesson.ID
		}

		var rows []models.UserProgress
		if err := db.Where("user_id = ? AND lesson_id IN ?", principal.ID, lessonIDs).Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course progress!", nil)
		}

		for _, row := range rows {
			progressMap[row.LessonID] = row.Completed
			if row.Completed {
				completedLessons++
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"total_lessons":     len(lessons),
		"completed_lessons": completedLessons,
		"progress":          progressMap,
	})
}
