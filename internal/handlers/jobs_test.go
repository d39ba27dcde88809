package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/api/internal/models"
)

func validJobRequest() jobRequest {
	return jobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Category:    "Technology",
		Description: "Build things",
	}
}

func TestJobRequestApplyDefaults(t *testing.T) {
	var job models.Job
	require.NoError(t, validJobRequest().apply(&job))

	assert.Equal(t, models.JobTypeFullTime, job.Type)
	assert.Equal(t, models.JobStatusPublished, job.Status)
	assert.Equal(t, models.ExperienceEntry, job.ExperienceLevel)
	assert.Equal(t, "Not Required", job.Education)
	assert.Equal(t, "USD", job.SalaryCurrency)
	assert.Equal(t, []string{}, job.Skills)
}

func TestJobRequestApplyRejectsUnknownEnums(t *testing.T) {
	cases := map[string]func(*jobRequest){
		"type":       func(r *jobRequest) { r.Type = "bananas" },
		"status":     func(r *jobRequest) { r.Status = "hacked" },
		"experience": func(r *jobRequest) { r.ExperienceLevel = "Galactic Overlord" },
		"education":  func(r *jobRequest) { r.Education = "Hogwarts" },
		"category":   func(r *jobRequest) { r.Category = "Gambling" },
	}

	for name, mutate := range cases {
		req := validJobRequest()
		mutate(&req)

		job := models.Job{ID: "j1", EmployerID: "e1"}
		err := req.apply(&job)
		require.Error(t, err, name)

		// A rejected request must leave nothing behind on the model.
		assert.Empty(t, job.Type, name)
		assert.Empty(t, job.Status, name)
		assert.Empty(t, job.ExperienceLevel, name)
	}
}

// A posting can never reach storage with a status outside the closed set;
// anything else would hide it from listings and from the expiry sweep.
func TestJobRequestApplyStatusStaysClosed(t *testing.T) {
	req := validJobRequest()
	req.Status = "archived"

	var job models.Job
	require.Error(t, req.apply(&job))

	req.Status = "draft"
	require.NoError(t, req.apply(&job))
	assert.Equal(t, models.JobStatusDraft, job.Status)
}
