package courseValidator

import (
	"fmt"

	"skillforge/middleware"
	"skillforge/validators"

	"github.com/gofiber/fiber/v2"
)

type QuizQuestionPayload struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,unique"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

type CreateQuizRequest struct {
	LessonID    uint                  `json:"lesson_id" validate:"required"`
	Title       string                `json:"title" validate:"required,max=100"`
	Description string                `json:"description"`
	Questions   []QuizQuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

type UpdateQuizRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=100"`
	Description *string               `json:"description"`
	Questions   []QuizQuestionPayload `json:"questions" validate:"omitempty,min=1,dive"`
}

type QuizAnswerPayload struct {
	QuestionID     uint   `json:"question_id" validate:"required"`
	SelectedOption string `json:"selected_option"`
}

type SubmitQuizRequest struct {
	Answers []QuizAnswerPayload `json:"answers" validate:"dive"`
}

func QuizID() fiber.Handler { return paramID("id", "quizID") }

// checkQuestions enforces the invariants the schema cannot express:
// every question's correct answer must be one of its own options.
func checkQuestions(questions []QuizQuestionPayload, errors map[string]string) {
	for i, q := range questions {
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			errors[fmt.Sprintf("questions[%d].correct_answer", i)] = "Correct answer must be one of the provided options!"
		}
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		checkQuestions(reqData.Questions, errors)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		checkQuestions(reqData.Questions, errors)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Partial and empty submissions are allowed; unanswered
		// questions are scored as incorrect.
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
