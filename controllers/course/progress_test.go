package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"skillforge/database"
	"skillforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkLessonComplete(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	lesson := createLesson(t, course.ID, instructor.ID, 1)

	path := fmt.Sprintf("/progress/lesson/%d/complete", lesson.ID)
	code, _ := doRequest(t, app, http.MethodPost, path, tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var progress models.UserProgress
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).
		First(&progress).Error)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletionDate)
	assert.False(t, progress.QuizAttempted)

	// Marking again upserts the same row instead of inserting another.
	code, _ = doRequest(t, app, http.MethodPost, path, tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var count int64
	database.Database.Db.Model(&models.UserProgress{}).
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkLessonCompleteStudentsOnly(t *testing.T) {
	app := setupApp(t)
	instructor := createUser(t, models.RoleInstructor)
	admin := createUser(t, models.RoleAdmin)
	course := createCourse(t, instructor.ID)
	lesson := createLesson(t, course.ID, instructor.ID, 1)

	path := fmt.Sprintf("/progress/lesson/%d/complete", lesson.ID)
	code, _ := doRequest(t, app, http.MethodPost, path, tokenFor(t, instructor), nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPost, path, tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusForbidden, code)

	var count int64
	database.Database.Db.Model(&models.UserProgress{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMarkLessonCompleteUnknownLesson(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)

	code, _ := doRequest(t, app, http.MethodPost, "/progress/lesson/9999/complete", tokenFor(t, student), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMarkCompleteKeepsQuizResult(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	lesson := createLesson(t, course.ID, instructor.ID, 1)

	score := 75.0
	require.NoError(t, database.Database.Db.Create(&models.UserProgress{
		UserID:        student.ID,
		LessonID:      lesson.ID,
		CourseID:      course.ID,
		Completed:     true,
		QuizScore:     &score,
		QuizAttempted: true,
	}).Error)

	path := fmt.Sprintf("/progress/lesson/%d/complete", lesson.ID)
	code, _ := doRequest(t, app, http.MethodPost, path, tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var progress models.UserProgress
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).
		First(&progress).Error)
	assert.True(t, progress.QuizAttempted)
	require.NotNil(t, progress.QuizScore)
	assert.Equal(t, 75.0, *progress.QuizScore)
}

func TestGetCourseProgress(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	first := createLesson(t, course.ID, instructor.ID, 1)
	createLesson(t, course.ID, instructor.ID, 2)
	enroll(t, student.ID, course.ID)

	code, _ := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/progress/lesson/%d/complete", first.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/progress/course/%d", course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		TotalLessons     int `json:"total_lessons"`
		CompletedLessons int `json:"completed_lessons"`
	}
	decodeData(t, resp.Data, &data)
	assert.Equal(t, 2, data.TotalLessons)
	assert.Equal(t, 1, data.CompletedLessons)
}

func TestGetCourseProgressEmptyCourse(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	enroll(t, student.ID, course.ID)

	code, resp := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/progress/course/%d", course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		TotalLessons     int `json:"total_lessons"`
		CompletedLessons int `json:"completed_lessons"`
	}
	decodeData(t, resp.Data, &data)
	assert.Zero(t, data.TotalLessons)
	assert.Zero(t, data.CompletedLessons)
}

func TestGetCourseProgressRequiresEnrollmentForStudents(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)

	code, _ := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/progress/course/%d", course.ID), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusForbidden, code)

	// The course's instructor reads progress without enrollment.
	code, _ = doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/progress/course/%d", course.ID), tokenFor(t, instructor), nil)
	assert.Equal(t, http.StatusOK, code)
}
