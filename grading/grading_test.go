package grading

import (
	"testing"

	"skillforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id uint, text, correct string, options ...string) models.QuizQuestion {
	q := models.QuizQuestion{
		QuestionText:  text,
		Options:       options,
		CorrectAnswer: correct,
	}
	q.ID = id
	return q
}

func TestGradeAllCorrect(t *testing.T) {
	questions := []models.QuizQuestion{
		question(1, "2+2?", "4", "3", "4"),
		question(2, "3+3?", "6", "5", "6"),
	}

	result := Grade(questions, map[uint]string{1: "4", 2: "6"})

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 2, result.TotalQuestions)
}

func TestGradeHalfCorrect(t *testing.T) {
	questions := []models.QuizQuestion{
		question(1, "Capital of France?", "Paris", "Paris", "Lyon"),
		question(2, "Capital of Spain?", "Madrid", "Madrid", "Barcelona"),
	}

	result := Grade(questions, map[uint]string{1: "Paris", 2: "Barcelona"})

	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 1, result.CorrectCount)

	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].IsCorrect)
	assert.False(t, result.Results[1].IsCorrect)
	// The breakdown always discloses the correct answer.
	assert.Equal(t, "Madrid", result.Results[1].CorrectAnswer)
}

func TestGradeUnansweredCountsIncorrect(t *testing.T) {
	questions := []models.QuizQuestion{
		question(1, "q1", "A", "A", "B"),
		question(2, "q2", "B", "A", "B"),
		question(3, "q3", "A", "A", "B"),
	}

	result := Grade(questions, map[uint]string{1: "A"})

	assert.Equal(t, 33.33, result.Score)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 3, result.TotalQuestions)

	require.Len(t, result.Results, 3)
	assert.Nil(t, result.Results[1].SelectedOption)
	assert.False(t, result.Results[1].IsCorrect)
}

func TestGradeExactStringMatch(t *testing.T) {
	questions := []models.QuizQuestion{
		question(1, "q1", "Paris", "Paris", "Lyon"),
	}

	// No trimming or case folding on comparison.
	result := Grade(questions, map[uint]string{1: "paris"})
	assert.Equal(t, 0.0, result.Score)

	result = Grade(questions, map[uint]string{1: " Paris"})
	assert.Equal(t, 0.0, result.Score)
}

func TestGradeUnknownQuestionIDIgnored(t *testing.T) {
	questions := []models.QuizQuestion{
		question(1, "q1", "A", "A", "B"),
	}

	result := Grade(questions, map[uint]string{1: "A", 999: "B"})

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 1, result.TotalQuestions)
}

func TestGradeEmptyQuiz(t *testing.T) {
	result := Grade(nil, map[uint]string{1: "A"})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, result.CorrectCount)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Empty(t, result.Results)
}

func TestGradeResultsFollowStoredOrder(t *testing.T) {
	questions := []models.QuizQuestion{
		question(7, "first", "A", "A", "B"),
		question(3, "second", "B", "A", "B"),
		question(9, "third", "A", "A", "B"),
	}

	result := Grade(questions, nil)

	require.Len(t, result.Results, 3)
	assert.Equal(t, uint(7), result.Results[0].QuestionID)
	assert.Equal(t, uint(3), result.Results[1].QuestionID)
	assert.Equal(t, uint(9), result.Results[2].QuestionID)
}
