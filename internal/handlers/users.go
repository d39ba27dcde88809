package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/middleware"
	"jobportal/api/internal/models"
	"jobportal/api/internal/security"
	"jobportal/api/internal/service"
)

type profilePayload struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Role         string             `json:"role"`
	Company      string             `json:"company"`
	Position     string             `json:"position"`
	Location     string             `json:"location"`
	Bio          string             `json:"bio"`
	Skills       []string           `json:"skills"`
	HasResume    bool               `json:"hasResume"`
	ProfileImage string             `json:"profileImage"`
	SocialLinks  models.SocialLinks `json:"socialLinks"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func profileResponse(user models.User) profilePayload {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return profilePayload{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		Company:      user.Company,
		Position:     user.Position,
		Location:     user.Location,
		Bio:          user.Bio,
		Skills:       skills,
		HasResume:    user.ResumeKey != "",
		ProfileImage: user.ProfileImage,
		SocialLinks:  user.SocialLinks,
		CreatedAt:    user.CreatedAt,
	}
}

type updateProfileRequest struct {
	Name         string             `json:"name" binding:"required,min=3,max=50"`
	Company      string             `json:"company" binding:"max=100"`
	Position     string             `json:"position" binding:"max=100"`
	Location     string             `json:"location" binding:"max=100"`
	Bio          string             `json:"bio" binding:"max=500"`
	Skills       []string           `json:"skills"`
	ProfileImage string             `json:"profileImage"`
	SocialLinks  models.SocialLinks `json:"socialLinks"`
}

func (h HandlerSet) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile payload"})
		return
	}

	user.Name = req.Name
	user.Company = req.Company
	user.Position = req.Position
	user.Location = req.Location
	user.Bio = req.Bio
	user.Skills = req.Skills
	if user.Skills == nil {
		user.Skills = []string{}
	}
	user.ProfileImage = req.ProfileImage
	user.SocialLinks = req.SocialLinks

	if err := h.users.UpdateProfile(c.Request.Context(), user); err != nil {
		h.serverError(c, err, "update profile failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileResponse(user)})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword is the only write path that touches the credential, and it
// always re-hashes.
func (h HandlerSet) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current and new password required"})
		return
	}

	if !security.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	hash, err := security.HashPassword(req.NewPassword, h.cfg.Security.BcryptCost)
	if err != nil {
		h.serverError(c, err, "hash password failed")
		return
	}

	if err := h.users.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		h.serverError(c, err, "update password failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) UploadResume(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume file required"})
		return
	}
	defer file.Close()

	result, err := h.resumeService.Upload(c.Request.Context(), user, file, header.Size)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedResumeType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF resumes are accepted"})
			return
		}
		h.serverError(c, err, "resume upload failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key":       result.Key,
		"url":       result.SignedURL,
		"expiresAt": result.ExpiresAt,
	})
}

func (h HandlerSet) SaveJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	jobID := c.Param("jobId")
	if _, err := h.jobs.GetByID(c.Request.Context(), jobID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	if err := h.saved.Save(c.Request.Context(), user.ID, jobID); err != nil {
		h.serverError(c, err, "save job failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) UnsaveJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	if err := h.saved.Unsave(c.Request.Context(), user.ID, c.Param("jobId")); err != nil {
		h.serverError(c, err, "unsave job failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) ListSavedJobs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	jobs, err := h.saved.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.serverError(c, err, "list saved jobs failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobsPayload(jobs)})
}
