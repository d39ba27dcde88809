package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/ids"
	"jobportal/api/internal/middleware"
	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
)

type jobPayload struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Category         string     `json:"category"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Skills           []string   `json:"skills"`
	Benefits         []string   `json:"benefits"`
	SalaryMin        int        `json:"salaryMin"`
	SalaryMax        int        `json:"salaryMax"`
	SalaryCurrency   string     `json:"salaryCurrency"`
	ExperienceLevel  string     `json:"experienceLevel"`
	Education        string     `json:"education"`
	Deadline         *time.Time `json:"applicationDeadline,omitempty"`
	CompanyLogo      string     `json:"companyLogo"`
	EmployerID       string     `json:"employerId"`
	Status           string     `json:"status"`
	Views            int64      `json:"views"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func toJobPayload(job models.Job) jobPayload {
	return jobPayload{
		ID:               job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		Type:             string(job.Type),
		Category:         job.Category,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Skills:           job.Skills,
		Benefits:         job.Benefits,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		SalaryCurrency:   job.SalaryCurrency,
		ExperienceLevel:  string(job.ExperienceLevel),
		Education:        job.Education,
		Deadline:         job.Deadline,
		CompanyLogo:      job.CompanyLogo,
		EmployerID:       job.EmployerID,
		Status:           string(job.Status),
		Views:            job.Views,
		CreatedAt:        job.CreatedAt,
	}
}

func jobsPayload(jobs []models.Job) []jobPayload {
	out := make([]jobPayload, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobPayload(job))
	}
	return out
}

func (h HandlerSet) ListJobs(c *gin.Context) {
	filter := models.JobFilter{
		Keyword:         c.Query("keyword"),
		Location:        c.Query("location"),
		Type:            c.Query("type"),
		Category:        c.Query("category"),
		ExperienceLevel: c.Query("experienceLevel"),
	}
	if v, err := strconv.Atoi(c.Query("salaryMin")); err == nil {
		filter.SalaryMin = v
	}
	if v, err := strconv.Atoi(c.Query("salaryMax")); err == nil {
		filter.SalaryMax = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 1 {
		filter.Offset = (v - 1) * 50
	}

	jobs, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		h.serverError(c, err, "list jobs failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobsPayload(jobs)})
}

func (h HandlerSet) GetJob(c *gin.Context) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		h.serverError(c, err, "get job failed")
		return
	}

	// View counting goes through redis first so hot postings don't hammer
	// the jobs table; the DB counter trails by at most the flush interval.
	views := job.Views
	if h.cache != nil {
		if n, err := h.cache.Incr(c.Request.Context(), "job:views:"+job.ID).Result(); err == nil {
			views += n
		}
	}
	job.Views = views

	c.JSON(http.StatusOK, gin.H{"job": toJobPayload(job)})
}

type jobRequest struct {
	Title            string     `json:"title" binding:"required,max=100"`
	Company          string     `json:"company" binding:"required,max=100"`
	Location         string     `json:"location" binding:"required,max=100"`
	Type             string     `json:"type"`
	Category         string     `json:"category" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Skills           []string   `json:"skills"`
	Benefits         []string   `json:"benefits"`
	SalaryMin        int        `json:"salaryMin"`
	SalaryMax        int        `json:"salaryMax"`
	SalaryCurrency   string     `json:"salaryCurrency"`
	ExperienceLevel  string     `json:"experienceLevel"`
	Education        string     `json:"education"`
	Deadline         *time.Time `json:"applicationDeadline"`
	CompanyLogo      string     `json:"companyLogo"`
	Status           string     `json:"status"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// apply copies the request onto the model. Enum fields go through the closed
// sets in models; out-of-set values are rejected, empty ones take the posting
// defaults.
func (r jobRequest) apply(job *models.Job) error {
	jobType, ok := models.ParseJobType(r.Type)
	if !ok {
		return fmt.Errorf("unknown job type %q", r.Type)
	}
	category, ok := models.ParseJobCategory(r.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	level, ok := models.ParseExperienceLevel(r.ExperienceLevel)
	if !ok {
		return fmt.Errorf("unknown experience level %q", r.ExperienceLevel)
	}
	education, ok := models.ParseEducation(r.Education)
	if !ok {
		return fmt.Errorf("unknown education level %q", r.Education)
	}
	status, ok := models.ParseJobStatus(r.Status)
	if !ok {
		return fmt.Errorf("unknown status %q", r.Status)
	}

	job.Title = r.Title
	job.Company = r.Company
	job.Location = r.Location
	job.Type = jobType
	job.Category = category
	job.Description = r.Description
	job.Requirements = orEmpty(r.Requirements)
	job.Responsibilities = orEmpty(r.Responsibilities)
	job.Skills = orEmpty(r.Skills)
	job.Benefits = orEmpty(r.Benefits)
	job.SalaryMin = r.SalaryMin
	job.SalaryMax = r.SalaryMax
	job.SalaryCurrency = r.SalaryCurrency
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}
	job.ExperienceLevel = level
	job.Education = education
	job.Deadline = r.Deadline
	job.CompanyLogo = r.CompanyLogo
	job.Status = status
	return nil
}

func (h HandlerSet) CreateJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job payload"})
		return
	}

	job := models.Job{
		ID:         ids.New(),
		EmployerID: user.ID,
	}
	if err := req.apply(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job payload"})
		return
	}

	if err := h.jobs.Create(c.Request.Context(), job); err != nil {
		h.serverError(c, err, "create job failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": toJobPayload(job)})
}

// ownedJob loads a job and enforces that the caller owns it. Admins bypass
// the ownership check.
func (h HandlerSet) ownedJob(c *gin.Context, user models.User) (models.Job, bool) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			h.serverError(c, err, "get job failed")
		}
		return models.Job{}, false
	}

	if job.EmployerID != user.ID && user.Role != models.UserRoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return models.Job{}, false
	}
	return job, true
}

func (h HandlerSet) UpdateJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	job, ok := h.ownedJob(c, user)
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job payload"})
		return
	}
	if err := req.apply(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job payload"})
		return
	}

	if err := h.jobs.Update(c.Request.Context(), job); err != nil {
		h.serverError(c, err, "update job failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": toJobPayload(job)})
}

func (h HandlerSet) DeleteJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	job, ok := h.ownedJob(c, user)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), job.ID); err != nil {
		h.serverError(c, err, "delete job failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed"})
}

func (h HandlerSet) RecommendedJobs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	jobs, err := h.jobs.Recommended(c.Request.Context(), user.ID, user.Skills, 10)
	if err != nil {
		h.serverError(c, err, "recommend jobs failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobsPayload(jobs)})
}
