package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	for _, valid := range []string{"jobseeker", "employer", "admin"} {
		role, err := ParseUserRole(valid)
		require.NoError(t, err)
		assert.Equal(t, UserRole(valid), role)
	}

	role, err := ParseUserRole("")
	require.NoError(t, err)
	assert.Equal(t, UserRoleJobseeker, role, "empty role defaults to jobseeker")

	for _, invalid := range []string{"superuser", "Jobseeker", "ADMIN", "root"} {
		_, err := ParseUserRole(invalid)
		assert.Error(t, err, "role %q must be rejected", invalid)
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, valid := range []string{"pending", "reviewing", "shortlisted", "rejected", "accepted"} {
		status, ok := ParseApplicationStatus(valid)
		require.True(t, ok)
		assert.Equal(t, ApplicationStatus(valid), status)
	}

	_, ok := ParseApplicationStatus("archived")
	assert.False(t, ok)
}
