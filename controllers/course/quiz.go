package controllers

import (
	"log"
	"time"

	"skillforge/authz"
	"skillforge/database"
	"skillforge/grading"
	"skillforge/middleware"
	"skillforge/models"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// studentQuestion is the answer-stripped question shape returned to
// enrolled students before submission.
type studentQuestion struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

// loadQuizWithLesson fetches a quiz, its lesson and the lesson's
// course. A missing lesson or course is a broken reference and is
// reported as an internal error, never a panic.
func loadQuizWithLesson(quizID uint) (*models.Quiz, *models.Lesson, *models.Course, int, error) {
	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		return nil, nil, nil, fiber.StatusNotFound, err
	}

	var lesson models.Lesson
	if err := db.First(&lesson, quiz.LessonID).Error; err != nil {
		log.Printf("Broken lesson reference for quiz %d: %v", quiz.ID, err)
		return &quiz, nil, nil, fiber.StatusInternalServerError, err
	}

	var course models.Course
	if err := db.First(&course, lesson.CourseID).Error; err != nil {
		log.Printf("Broken course reference for lesson %d: %v", lesson.ID, err)
		return &quiz, &lesson, nil, fiber.StatusInternalServerError, err
	}

	return &quiz, &lesson, &course, fiber.StatusOK, nil
}

// CreateQuiz creates the quiz for a lesson. The caller must be the
// lesson's instructor or an admin; a lesson holds at most one quiz.
func CreateQuiz(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, reqData.LessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := authz.ManageResource(principal, lesson.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	var existing models.Quiz
	if err := db.Where("lesson_id = ?", lesson.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A quiz already exists for this lesson. Please edit the existing one.", nil)
	}

	quiz := models.Quiz{
		LessonID:    lesson.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	for _, q := range reqData.Questions {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			QuestionText:  q.QuestionText,
			Options:       datatypes.NewJSONSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		lesson.QuizID = &quiz.ID
		return tx.Save(&lesson).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetQuizByID returns a quiz. Visible to the lesson's instructor,
// admins, and enrolled students; students receive the questions with
// the correct answers stripped.
func GetQuizByID(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)

	quiz, lesson, course, status, err := loadQuizWithLesson(quizID)
	if err != nil {
		if status == fiber.StatusNotFound {
			return middleware.JsonResponse(c, status, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, status, false, "Associated lesson for this quiz is missing. It may have been deleted.", nil)
	}

	enrolled := isEnrolled(principal.ID, course.ID)
	if err := authz.ViewContent(principal, lesson.InstructorID, enrolled); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	// Owning instructor and admins see the full quiz; students get the
	// answer-stripped shape.
	if principal.IsAdmin() || principal.ID == lesson.InstructorID {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
	}

	questions := make([]studentQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = studentQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":          quiz.ID,
		"lesson_id":   quiz.LessonID,
		"title":       quiz.Title,
		"description": quiz.Description,
		"questions":   questions,
	})
}

// UpdateQuiz updates a quiz's fields and, when provided, replaces its
// question set. The caller must be the lesson's instructor or an
// admin.
func UpdateQuiz(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)

	quiz, lesson, _, status, err := loadQuizWithLesson(quizID)
	if err != nil {
		if status == fiber.StatusNotFound {
			return middleware.JsonResponse(c, status, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, status, false, "Associated lesson for this quiz is missing. It may have been deleted.", nil)
	}

	if err := authz.ManageResource(principal, lesson.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedQuizUpdate").(*courseValidator.UpdateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		quiz.Title = *reqData.Title
	}
	if reqData.Description != nil {
		quiz.Description = *reqData.Description
	}

	db := database.Database.Db
	err = db.Transaction(func(tx *gorm.DB) error {
		if reqData.Questions != nil {
			if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
				return err
			}
			quiz.Questions = nil
			for _, q := range reqData.Questions {
				quiz.Questions = append(quiz.Questions, models.QuizQuestion{
					QuizID:        quiz.ID,
					QuestionText:  q.QuestionText,
					Options:       datatypes.NewJSONSlice(q.Options),
					CorrectAnswer: q.CorrectAnswer,
				})
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(quiz).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz deletes a quiz, its questions, and the lesson's back
// reference. The caller must be the lesson's instructor or an admin.
func DeleteQuiz(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)

	quiz, lesson, _, status, err := loadQuizWithLesson(quizID)
	if err != nil && status == fiber.StatusNotFound {
		return middleware.JsonResponse(c, status, false, "Quiz not found!", nil)
	}

	// With a broken lesson reference the quiz itself can still be
	// removed; only ownership needs the lesson.
	if lesson == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Associated lesson for this quiz is missing. It may have been deleted.", nil)
	}

	if err := authz.ManageResource(principal, lesson.InstructorID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	db := database.Database.Db
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(quiz).Error; err != nil {
			return err
		}
		lesson.QuizID = nil
		return tx.Save(lesson).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// SubmitQuiz grades a student's submission and records the result
// against their lesson progress. Submission always marks the lesson
// complete regardless of score; resubmission overwrites the previous
// result.
func SubmitQuiz(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)

	quiz, lesson, course, status, err := loadQuizWithLesson(quizID)
	if err != nil {
		if status == fiber.StatusNotFound {
			return middleware.JsonResponse(c, status, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, status, false, "Course information missing for this quiz.", nil)
	}

	enrolled := isEnrolled(principal.ID, course.ID)
	if err := authz.SubmitQuiz(principal, enrolled); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*courseValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answers := make(map[uint]string, len(reqData.Answers))
	for _, a := range reqData.Answers {
		answers[a.QuestionID] = a.SelectedOption
	}

	result := grading.Grade(quiz.Questions, answers)

	now := time.Now()
	score := result.Score
	progress := models.UserProgress{
		UserID:         principal.ID,
		LessonID:       lesson.ID,
		CourseID:       course.ID,
		Completed:      true,
		CompletionDate: &now,
		QuizScore:      &score,
		QuizAttempted:  true,
	}
	if err := upsertProgress(&progress); err != nil {
		log.Printf("Error recording quiz result for user %d lesson %d: %v", principal.ID, lesson.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"score":           result.Score,
		"correct_count":   result.CorrectCount,
		"total_questions": result.TotalQuestions,
		"results":         result.Results,
		"user_progress":   progress,
	})
}
