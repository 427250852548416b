package jobController

import (
	"log"

	"skillforge/authz"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	jobValidator "skillforge/validators/job"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetAllJobs lists job postings with keyword search, filters and
// pagination. Public.
func GetAllJobs(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJobList").(*jobValidator.JobListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db
	query := db.Model(&models.Job{})

	if reqData.Keyword != "" {
		like := "%" + reqData.Keyword + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)",
			like, like, like, like,
		)
	}
	if reqData.JobType != "" {
		query = query.Where("job_type = ?", reqData.JobType)
	}
	if reqData.SalaryRange != "" {
		query = query.Where("salary_range = ?", reqData.SalaryRange)
	}

	var total int64
	query.Count(&total)

	order := "created_at DESC"
	if reqData.Sort == "oldest" {
		order = "created_at ASC"
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var jobs []models.Job
	if err := query.
		Order(order).
		Offset(offset).
		Limit(reqData.Limit).
		Find(&jobs).Error; err != nil {
		log.Printf("Error fetching jobs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", fiber.Map{
		"jobs": jobs,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetJobByID returns a single job posting. Public.
func GetJobByID(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(uint)

	var job models.Job
	if err := database.Database.Db.First(&job, jobID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job fetched successfully!", job)
}

// GetMyJobs lists the postings created by the authenticated
// instructor or admin.
func GetMyJobs(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var jobs []models.Job
	if err := database.Database.Db.
		Where("posted_by_id = ?", principal.ID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", jobs)
}

// CreateJob creates a job posting owned by the caller. Instructors
// and admins only.
func CreateJob(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := authz.CreateResource(principal); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedJob").(*jobValidator.CreateJobRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	job := models.Job{
		Title:            reqData.Title,
		Company:          reqData.Company,
		Location:         reqData.Location,
		Description:      reqData.Description,
		Requirements:     datatypes.NewJSONSlice(reqData.Requirements),
		ApplicationLink:  reqData.ApplicationLink,
		ApplicationEmail: reqData.ApplicationEmail,
		PostedByID:       principal.ID,
	}
	if reqData.SalaryRange != "" {
		job.SalaryRange = reqData.SalaryRange
	}
	if reqData.JobType != "" {
		job.JobType = reqData.JobType
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		log.Printf("Error creating job: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job created successfully!", job)
}

// UpdateJob updates a posting. Only the poster or an admin may edit.
func UpdateJob(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)

	var job models.Job
	if err := database.Database.Db.First(&job, jobID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	if err := authz.ManageResource(principal, job.PostedByID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedJobUpdate").(*jobValidator.UpdateJobRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		job.Title = reqData.Title
	}
	if reqData.Company != "" {
		job.Company = reqData.Company
	}
	if reqData.Location != "" {
		job.Location = reqData.Location
	}
	if reqData.Description != "" {
		job.Description = reqData.Description
	}
	if reqData.Requirements != nil {
		job.Requirements = datatypes.NewJSONSlice(reqData.Requirements)
	}
	if reqData.SalaryRange != "" {
		job.SalaryRange = reqData.SalaryRange
	}
	if reqData.JobType != "" {
		job.JobType = reqData.JobType
	}
	if reqData.ApplicationLink != "" {
		job.ApplicationLink = reqData.ApplicationLink
	}
	if reqData.ApplicationEmail != "" {
		job.ApplicationEmail = reqData.ApplicationEmail
	}

	if err := database.Database.Db.Save(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job updated successfully!", job)
}

// DeleteJob removes a posting. Only the poster or an admin.
func DeleteJob(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)

	var job models.Job
	if err := database.Database.Db.First(&job, jobID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	if err := authz.ManageResource(principal, job.PostedByID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	}

	if err := database.Database.Db.Delete(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job deleted successfully!", nil)
}
