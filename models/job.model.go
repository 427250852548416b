package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job salary ranges and employment types.
var (
	JobSalaryRanges = []string{
		"Not disclosed", "Below $30k", "$30k - $50k", "$50k - $70k",
		"$70k - $100k", "$100k - $150k", "Above $150k", "Competitive",
	}
	JobTypes = []string{
		"Full-time", "Part-time", "Contract", "Internship", "Temporary",
	}
)

// Job is a job-board posting. PostedByID identifies the owning
// instructor or admin.
type Job struct {
	gorm.Model
	Title            string                      `json:"title"`
	Company          string                      `json:"company"`
	Location         string                      `json:"location"`
	Description      string                      `json:"description" gorm:"type:text"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements"`
	SalaryRange      string                      `json:"salary_range" gorm:"default:'Not disclosed'"`
	JobType          string                      `json:"job_type" gorm:"default:'Full-time'"`
	ApplicationLink  string                      `json:"application_link" gorm:"default:''"`
	ApplicationEmail string                      `json:"application_email" gorm:"default:''"`
	PostedByID       uint                        `json:"posted_by_id" gorm:"index;not null"`
}

// ValidSalaryRange reports whether s is a known salary range.
func ValidSalaryRange(s string) bool {
	for _, r := range JobSalaryRanges {
		if r == s {
			return true
		}
	}
	return false
}

// ValidJobType reports whether s is a known job type.
func ValidJobType(s string) bool {
	for _, t := range JobTypes {
		if t == s {
			return true
		}
	}
	return false
}
