package models

import "time"

// Enrollment records a student's membership in a course. The composite
// unique index makes double enrollment a constraint violation. Rows
// are hard-deleted on unenroll so the index never blocks re-enrolling.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
}
