package models

import "gorm.io/gorm"

// Course categories offered by the platform.
var CourseCategories = []string{
	"Web Development",
	"Web Design",
	"Backend Development",
	"Programming",
	"Design",
	"Computer Science",
	"Data Science",
	"Mobile Development",
}

// Course represents a learning course. InstructorID identifies the
// owning user; it is recorded at creation and never checked against
// the users table.
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	InstructorID uint    `json:"instructor_id" gorm:"index;not null"`
	Price        float64 `json:"price" gorm:"default:0"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url" gorm:"default:'https://via.placeholder.com/400x250'"`
	Rating       float64 `json:"rating" gorm:"default:0"`
	NumReviews   int     `json:"num_reviews" gorm:"default:0"`
}

// ValidCategory reports whether category is one of the known course categories.
func ValidCategory(category string) bool {
	for _, c := range CourseCategories {
		if c == category {
			return true
		}
	}
	return false
}
