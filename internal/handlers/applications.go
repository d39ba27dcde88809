package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/ids"
	"jobportal/api/internal/middleware"
	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
)

type applicationPayload struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"jobId"`
	ApplicantID string                   `json:"applicantId"`
	CoverLetter string                   `json:"coverLetter"`
	Status      string                   `json:"status"`
	Notes       []models.ApplicationNote `json:"notes"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func toApplicationPayload(app models.Application) applicationPayload {
	notes := app.Notes
	if notes == nil {
		notes = []models.ApplicationNote{}
	}
	return applicationPayload{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		Notes:       notes,
		CreatedAt:   app.CreatedAt,
	}
}

func applicationsPayload(apps []models.Application) []applicationPayload {
	out := make([]applicationPayload, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationPayload(app))
	}
	return out
}

type submitApplicationRequest struct {
	JobID       string `json:"job" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

func (h HandlerSet) SubmitApplication(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req submitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	if user.ResumeKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Upload a resume before applying"})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		h.serverError(c, err, "get job failed")
		return
	}
	if job.Status != models.JobStatusPublished {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job is not accepting applications"})
		return
	}

	app := models.Application{
		ID:          ids.New(),
		JobID:       job.ID,
		ApplicantID: user.ID,
		ResumeKey:   user.ResumeKey,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationPending,
		Notes:       []models.ApplicationNote{},
	}

	if err := h.applications.Create(c.Request.Context(), app); err != nil {
		h.serverError(c, err, "submit application failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": toApplicationPayload(app)})
}

func (h HandlerSet) ListMyApplications(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	apps, err := h.applications.ListByApplicant(c.Request.Context(), user.ID)
	if err != nil {
		h.serverError(c, err, "list applications failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applicationsPayload(apps)})
}

func (h HandlerSet) ListJobApplications(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		h.serverError(c, err, "get job failed")
		return
	}

	if job.EmployerID != user.ID && user.Role != models.UserRoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	apps, err := h.applications.ListByJob(c.Request.Context(), job.ID)
	if err != nil {
		h.serverError(c, err, "list job applications failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applicationsPayload(apps)})
}

type updateApplicationRequest struct {
	Status      string `json:"status"`
	NoteContent string `json:"noteContent"`
}

func (h HandlerSet) UpdateApplication(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update payload"})
		return
	}

	app, err := h.applications.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		h.serverError(c, err, "get application failed")
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), app.JobID)
	if err != nil {
		h.serverError(c, err, "get job failed")
		return
	}
	if job.EmployerID != user.ID && user.Role != models.UserRoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	if req.Status != "" {
		status, ok := models.ParseApplicationStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}
		if err := h.applications.UpdateStatus(c.Request.Context(), app.ID, status); err != nil {
			h.serverError(c, err, "update application status failed")
			return
		}
		app.Status = status
	}

	if req.NoteContent != "" {
		note := models.ApplicationNote{
			Content:   req.NoteContent,
			AuthorID:  user.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.applications.AppendNote(c.Request.Context(), app.ID, note); err != nil {
			h.serverError(c, err, "append note failed")
			return
		}
		app.Notes = append(app.Notes, note)
	}

	c.JSON(http.StatusOK, gin.H{"application": toApplicationPayload(app)})
}
