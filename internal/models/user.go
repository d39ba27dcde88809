package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

// ParseUserRole maps a wire value onto the closed role set. Unknown values
// are rejected rather than stored as free-form strings; the empty string
// falls back to jobseeker, matching the registration default.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case UserRoleJobseeker, UserRoleEmployer, UserRoleAdmin:
		return UserRole(s), nil
	case "":
		return UserRoleJobseeker, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         UserRole
	Company      string
	Position     string
	Location     string
	Bio          string
	Skills       []string
	ResumeKey    string
	ProfileImage string
	SocialLinks  SocialLinks
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
