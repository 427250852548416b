package models

import "gorm.io/gorm"

// Lesson represents a single lesson within a course. InstructorID is
// the user who created the lesson; it can differ from the owning
// course's instructor when an admin created it, and quiz management
// authorization resolves against this field, not the course's.
type Lesson struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" gorm:"default:''"`
	ImageURL     string `json:"image_url" gorm:"default:''"`
	Content      string `json:"content" gorm:"type:text"`
	ExternalURL  string `json:"external_url" gorm:"default:''"`
	Order        int    `json:"order" gorm:"column:lesson_order;default:0"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	QuizID       *uint  `json:"quiz_id"`
}
