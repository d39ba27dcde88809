package models

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeRemote     JobType = "Remote"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry Level"
	ExperienceMid       ExperienceLevel = "Mid Level"
	ExperienceSenior    ExperienceLevel = "Senior Level"
	ExperienceDirector  ExperienceLevel = "Director"
	ExperienceExecutive ExperienceLevel = "Executive"
)

var JobCategories = []string{
	"Technology", "Marketing", "Design", "Finance",
	"Healthcare", "Education", "Engineering", "Customer Service",
	"Sales", "HR", "Legal", "Other",
}

var EducationLevels = []string{
	"High School", "Associate", "Bachelor", "Master", "Doctorate", "Not Required",
}

// ParseJobType rejects values outside the closed type set. The empty string
// falls back to the posting default.
func ParseJobType(s string) (JobType, bool) {
	switch JobType(s) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract,
		JobTypeRemote, JobTypeFreelance, JobTypeInternship:
		return JobType(s), true
	case "":
		return JobTypeFullTime, true
	}
	return "", false
}

// ParseJobStatus rejects values outside {draft, published, closed}. The empty
// string falls back to published.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(s) {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return JobStatus(s), true
	case "":
		return JobStatusPublished, true
	}
	return "", false
}

// ParseExperienceLevel rejects values outside the closed level set. The empty
// string falls back to Entry Level.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch ExperienceLevel(s) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior,
		ExperienceDirector, ExperienceExecutive:
		return ExperienceLevel(s), true
	case "":
		return ExperienceEntry, true
	}
	return "", false
}

// ParseJobCategory validates against JobCategories. Category has no default;
// it is a required field.
func ParseJobCategory(s string) (string, bool) {
	for _, c := range JobCategories {
		if s == c {
			return s, true
		}
	}
	return "", false
}

// ParseEducation validates against EducationLevels. The empty string falls
// back to Not Required.
func ParseEducation(s string) (string, bool) {
	if s == "" {
		return "Not Required", true
	}
	for _, e := range EducationLevels {
		if s == e {
			return s, true
		}
	}
	return "", false
}

type Job struct {
	ID               string
	Title            string
	Company          string
	Location         string
	Type             JobType
	Category         string
	Description      string
	Requirements     []string
	Responsibilities []string
	Skills           []string
	Benefits         []string
	SalaryMin        int
	SalaryMax        int
	SalaryCurrency   string
	ExperienceLevel  ExperienceLevel
	Education        string
	Deadline         *time.Time
	CompanyLogo      string
	EmployerID       string
	Status           JobStatus
	Views            int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// JobFilter narrows the job listing. Zero values mean "no constraint".
type JobFilter struct {
	Keyword         string
	Location        string
	Type            string
	Category        string
	ExperienceLevel string
	SalaryMin       int
	SalaryMax       int
	Limit           int
	Offset          int
}
