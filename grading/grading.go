// Package grading scores quiz submissions. Grading is deterministic
// and pure; recording the result against user progress is the
// caller's responsibility.
package grading

import (
	"math"

	"skillforge/models"
)

// QuestionResult is the per-question breakdown returned after a
// submission. It always includes the correct answer; answer stripping
// for unsubmitted quizzes happens at the read endpoint, never here.
type QuestionResult struct {
	QuestionID     uint    `json:"question_id"`
	QuestionText   string  `json:"question_text"`
	SelectedOption *string `json:"selected_option"`
	CorrectAnswer  string  `json:"correct_answer"`
	IsCorrect      bool    `json:"is_correct"`
}

// Result is the structured output of grading one submission.
type Result struct {
	Score          float64          `json:"score"`
	CorrectCount   int              `json:"correct_count"`
	TotalQuestions int              `json:"total_questions"`
	Results        []QuestionResult `json:"results"`
}

// Grade scores a submission against the quiz's questions, iterating in
// stored order. A question missing from answers counts as unanswered
// and therefore incorrect. Comparison is exact string equality, no
// trimming. A quiz with zero questions scores 0, never a division by
// zero.
func Grade(questions []models.QuizQuestion, answers map[uint]string) Result {
	correctCount := 0
	results := make([]QuestionResult, 0, len(questions))

	for _, q := range questions {
		var selected *string
		if answer, ok := answers[q.ID]; ok {
			selected = &answer
		}

		isCorrect := selected != nil && *selected == q.CorrectAnswer
		if isCorrect {
			correctCount++
		}

		results = append(results, QuestionResult{
			QuestionID:     q.ID,
			QuestionText:   q.QuestionText,
			SelectedOption: selected,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	total := len(questions)
	score := 0.0
	if total > 0 {
		score = roundTwo(float64(correctCount) / float64(total) * 100)
	}

	return Result{
		Score:          score,
		CorrectCount:   correctCount,
		TotalQuestions: total,
		Results:        results,
	}
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
