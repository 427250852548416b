package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"skillforge/database"
	"skillforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollPath(userID, courseID uint) string {
	return fmt.Sprintf("/enrollment/%d/%d", userID, courseID)
}

func enrollmentExists(userID, courseID uint) bool {
	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count)
	return count > 0
}

func TestEnrollSelfService(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)

	code, resp := doRequest(t, app, http.MethodPost, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Status)

	assert.True(t, enrollmentExists(student.ID, course.ID))
}

func TestEnrollForAnotherUserForbidden(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	other := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)

	code, _ := doRequest(t, app, http.MethodPost, enrollPath(other.ID, course.ID), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, enrollmentExists(other.ID, course.ID))
}

func TestEnrollHasNoAdminOverride(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)

	// Admins cannot enroll anyone, themselves included.
	code, _ := doRequest(t, app, http.MethodPost, enrollPath(student.ID, course.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPost, enrollPath(admin.ID, course.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)

	code, _ := doRequest(t, app, http.MethodPost, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodPost, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, resp.Status)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollMissingCourse(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)

	code, _ := doRequest(t, app, http.MethodPost, enrollPath(student.ID, 9999), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUnenrollIsIdempotent(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	enroll(t, student.ID, course.ID)

	code, _ := doRequest(t, app, http.MethodDelete, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, enrollmentExists(student.ID, course.ID))

	// Removing a non-existent enrollment still succeeds.
	code, _ = doRequest(t, app, http.MethodDelete, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestUnenrollMissingCourseStillNotFound(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)

	code, _ := doRequest(t, app, http.MethodDelete, enrollPath(student.ID, 9999), tokenFor(t, student), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCheckEnrollmentVisibility(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	other := createUser(t, models.RoleStudent)
	admin := createUser(t, models.RoleAdmin)
	instructor := createUser(t, models.RoleInstructor)
	course := createCourse(t, instructor.ID)
	enroll(t, student.ID, course.ID)

	code, resp := doRequest(t, app, http.MethodGet, enrollPath(student.ID, course.ID), tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		IsEnrolled bool `json:"is_enrolled"`
	}
	decodeData(t, resp.Data, &data)
	assert.True(t, data.IsEnrolled)

	// Admin may check anyone; other students may not.
	code, _ = doRequest(t, app, http.MethodGet, enrollPath(student.ID, course.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, app, http.MethodGet, enrollPath(student.ID, course.ID), tokenFor(t, other), nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGetMyEnrolledCoursesSkipsMissing(t *testing.T) {
	app := setupApp(t)
	student := createUser(t, models.RoleStudent)
	instructor := createUser(t, models.RoleInstructor)
	kept := createCourse(t, instructor.ID)
	removed := createCourse(t, instructor.ID)
	enroll(t, student.ID, kept.ID)
	enroll(t, student.ID, removed.ID)

	// Delete one course directly, leaving a dangling enrollment row.
	require.NoError(t, database.Database.Db.Delete(&models.Course{}, removed.ID).Error)

	code, resp := doRequest(t, app, http.MethodGet, "/user/enrollments", tokenFor(t, student), nil)
	require.Equal(t, http.StatusOK, code)

	var courses []json.RawMessage
	decodeData(t, resp.Data, &courses)
	assert.Len(t, courses, 1)
}
