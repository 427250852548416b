package jobValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"
	"skillforge/models"
	"skillforge/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateJobRequest struct {
	Title            string   `json:"title" validate:"required,max=100"`
	Company          string   `json:"company" validate:"required,max=100"`
	Location         string   `json:"location" validate:"required,max=100"`
	Description      string   `json:"description" validate:"required,min=50"`
	Requirements     []string `json:"requirements"`
	SalaryRange      string   `json:"salary_range"`
	JobType          string   `json:"job_type"`
	ApplicationLink  string   `json:"application_link" validate:"omitempty,url"`
	ApplicationEmail string   `json:"application_email" validate:"omitempty,email"`
}

type UpdateJobRequest struct {
	Title            string   `json:"title" validate:"omitempty,max=100"`
	Company          string   `json:"company" validate:"omitempty,max=100"`
	Location         string   `json:"location" validate:"omitempty,max=100"`
	Description      string   `json:"description" validate:"omitempty,min=50"`
	Requirements     []string `json:"requirements"`
	SalaryRange      string   `json:"salary_range"`
	JobType          string   `json:"job_type"`
	ApplicationLink  string   `json:"application_link" validate:"omitempty,url"`
	ApplicationEmail string   `json:"application_email" validate:"omitempty,email"`
}

type JobListQuery struct {
	Keyword     string `query:"keyword"`
	JobType     string `query:"job_type"`
	SalaryRange string `query:"salary_range"`
	Sort        string `query:"sort"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
}

func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job ID format!", nil)
		}
		c.Locals("jobID", uint(id))
		return c.Next()
	}
}

func checkEnums(salaryRange, jobType string, errors map[string]string) {
	if salaryRange != "" && !models.ValidSalaryRange(salaryRange) {
		errors["salary_range"] = "Unknown salary range!"
	}
	if jobType != "" && !models.ValidJobType(jobType) {
		errors["job_type"] = "Unknown job type!"
	}
}

func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateJobRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		checkEnums(reqData.SalaryRange, reqData.JobType, errors)
		// One of the application channels must be present.
		if reqData.ApplicationLink == "" && reqData.ApplicationEmail == "" {
			errors["application_link"] = "Provide an application link or an application email!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateJobRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validators.Validate.Struct(reqData); err != nil {
			errors = validators.FieldErrors(err)
		}
		checkEnums(reqData.SalaryRange, reqData.JobType, errors)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}

func JobList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(JobListQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 10
		}

		c.Locals("validatedJobList", reqData)
		return c.Next()
	}
}
