package models

import "time"

// UserProgress tracks a user's completion state for a single lesson.
// At most one row exists per (user, lesson); writes go through an
// upsert on the composite unique index so concurrent completions
// resolve last-write-wins. Hard-deleted with its lesson or course so
// the index stays clean for re-created rows.
type UserProgress struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID       uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID       uint       `json:"course_id" gorm:"index;not null"`
	Completed      bool       `json:"completed" gorm:"default:false"`
	CompletionDate *time.Time `json:"completion_date"`
	QuizScore      *float64   `json:"quiz_score"`
	QuizAttempted  bool       `json:"quiz_attempted" gorm:"default:false"`
}
