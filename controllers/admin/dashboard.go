package adminController

import (
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboardStats returns platform-wide totals plus enrollment
// activity for the current day, week and month. Admin only; the role
// gate sits in the route chain.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalStudents, totalInstructors int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents)
	db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&totalInstructors)

	var totalCourses, totalLessons, totalQuizzes int64
	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Lesson{}).Count(&totalLessons)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)

	var totalJobs, totalStorybooks int64
	db.Model(&models.Job{}).Count(&totalJobs)
	db.Model(&models.Storybook{}).Count(&totalStorybooks)

	var totalEnrollments, enrollmentsToday, enrollmentsThisWeek, enrollmentsThisMonth int64
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)
	db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&enrollmentsToday)
	db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfWeek()).Count(&enrollmentsThisWeek)
	db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfMonth()).Count(&enrollmentsThisMonth)

	var completedLessons int64
	db.Model(&models.UserProgress{}).Where("completed = ?", true).Count(&completedLessons)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total":       totalUsers,
			"students":    totalStudents,
			"instructors": totalInstructors,
		},
		"content": fiber.Map{
			"courses":    totalCourses,
			"lessons":    totalLessons,
			"quizzes":    totalQuizzes,
			"jobs":       totalJobs,
			"storybooks": totalStorybooks,
		},
		"enrollments": fiber.Map{
			"total":      totalEnrollments,
			"today":      enrollmentsToday,
			"this_week":  enrollmentsThisWeek,
			"this_month": enrollmentsThisMonth,
		},
		"completed_lessons": completedLessons,
	})
}
