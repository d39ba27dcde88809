package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type generateTextRequest struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}

// GenerateText fills a canned cover-letter template. Placeholder for a real
// generation backend.
func (h HandlerSet) GenerateText(c *gin.Context) {
	var req generateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Name == "" {
		req.Name = "Applicant"
	}
	if req.JobTitle == "" {
		req.JobTitle = "the advertised position"
	}
	if req.Company == "" {
		req.Company = "your company"
	}

	text := fmt.Sprintf(
		"Dear Hiring Manager,\n\nMy name is %s and I am writing to express my interest in %s at %s. "+
			"I believe my background makes me a strong fit and I would welcome the chance to discuss it.\n\n"+
			"Kind regards,\n%s",
		req.Name, req.JobTitle, req.Company, req.Name,
	)

	c.JSON(http.StatusOK, gin.H{"message": text})
}
