package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz belongs to exactly one lesson (enforced by the unique index).
// Quiz rows are hard-deleted so the index never blocks re-creating a
// quiz for the same lesson.
type Quiz struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	LessonID    uint           `json:"lesson_id" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions" gorm:"foreignKey:QuizID"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer must be one
// of Options; validators enforce that at create/update time.
type QuizQuestion struct {
	ID            uint                        `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	QuizID        uint                        `json:"quiz_id" gorm:"index;not null"`
	QuestionText  string                      `json:"question_text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer string                      `json:"correct_answer"`
}
