package models

import "gorm.io/gorm"

// Storybook is a URL-based PDF resource managed by admins.
type Storybook struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	PDFURL       string `json:"pdf_url" gorm:"not null"`
	ImageURL     string `json:"image_url" gorm:"default:''"`
	UploadedByID uint   `json:"uploaded_by_id" gorm:"index;not null"`
}
