package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"skillforge/config"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseRoutes "skillforge/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires an in-memory database and the full route stack so
// handler tests exercise the same middleware chains as production.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "5000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T, role string) models.User {
	t.Helper()

	user := models.User{
		Name:     fmt.Sprintf("%s user", role),
		Email:    fmt.Sprintf("%s-%d@example.com", role, nextID()),
		Password: "ignored",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

var idCounter uint

func nextID() uint {
	idCounter++
	return idCounter
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func createCourse(t *testing.T, instructorID uint) models.Course {
	t.Helper()

	course := models.Course{
		Title:        "Go from scratch",
		Description:  "A complete introduction.",
		InstructorID: instructorID,
		Category:     "Programming",
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func createLesson(t *testing.T, courseID, instructorID uint, order int) models.Lesson {
	t.Helper()

	lesson := models.Lesson{
		CourseID:     courseID,
		Title:        fmt.Sprintf("Lesson %d", order),
		Content:      "lesson body",
		Order:        order,
		InstructorID: instructorID,
	}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)
	return lesson
}

func enroll(t *testing.T, userID, courseID uint) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&models.Enrollment{UserID: userID, CourseID: courseID}).Error)
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest runs one request through the app and decodes the standard
// response envelope.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp.StatusCode, parsed
}

func decodeData(t *testing.T, data json.RawMessage, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out))
}
