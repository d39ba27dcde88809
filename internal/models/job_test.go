package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobType(t *testing.T) {
	for _, valid := range []string{"Full-time", "Part-time", "Contract", "Remote", "Freelance", "Internship"} {
		jobType, ok := ParseJobType(valid)
		require.True(t, ok, valid)
		assert.Equal(t, JobType(valid), jobType)
	}

	jobType, ok := ParseJobType("")
	require.True(t, ok)
	assert.Equal(t, JobTypeFullTime, jobType, "empty type defaults to Full-time")

	for _, invalid := range []string{"full-time", "Permanent", "bananas"} {
		_, ok := ParseJobType(invalid)
		assert.False(t, ok, "type %q must be rejected", invalid)
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, valid := range []string{"draft", "published", "closed"} {
		status, ok := ParseJobStatus(valid)
		require.True(t, ok, valid)
		assert.Equal(t, JobStatus(valid), status)
	}

	status, ok := ParseJobStatus("")
	require.True(t, ok)
	assert.Equal(t, JobStatusPublished, status)

	for _, invalid := range []string{"archived", "Published", "hacked"} {
		_, ok := ParseJobStatus(invalid)
		assert.False(t, ok, "status %q must be rejected", invalid)
	}
}

func TestParseExperienceLevel(t *testing.T) {
	for _, valid := range []string{"Entry Level", "Mid Level", "Senior Level", "Director", "Executive"} {
		level, ok := ParseExperienceLevel(valid)
		require.True(t, ok, valid)
		assert.Equal(t, ExperienceLevel(valid), level)
	}

	level, ok := ParseExperienceLevel("")
	require.True(t, ok)
	assert.Equal(t, ExperienceEntry, level)

	_, ok = ParseExperienceLevel("Galactic Overlord")
	assert.False(t, ok)
}

func TestParseJobCategory(t *testing.T) {
	for _, valid := range JobCategories {
		category, ok := ParseJobCategory(valid)
		require.True(t, ok, valid)
		assert.Equal(t, valid, category)
	}

	for _, invalid := range []string{"", "technology", "Gambling"} {
		_, ok := ParseJobCategory(invalid)
		assert.False(t, ok, "category %q must be rejected", invalid)
	}
}

func TestParseEducation(t *testing.T) {
	for _, valid := range EducationLevels {
		education, ok := ParseEducation(valid)
		require.True(t, ok, valid)
		assert.Equal(t, valid, education)
	}

	education, ok := ParseEducation("")
	require.True(t, ok)
	assert.Equal(t, "Not Required", education)

	_, ok = ParseEducation("Hogwarts")
	assert.False(t, ok)
}
