package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContributionType is what a user offers to the community bank.
type ContributionType string

const (
	ContributionExperience ContributionType = "experience"
	ContributionQuestion   ContributionType = "question"
)

type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionApproved ContributionStatus = "approved"
	ContributionRejected ContributionStatus = "rejected"
)

var ContributionStatuses = []ContributionStatus{ContributionPending, ContributionApproved, ContributionRejected}

// Contribution is an interview experience or a question proposed by a user
// and waiting for, or past, admin review.
type Contribution struct {
	ID         uuid.UUID          `db:"id" json:"id"`
	UserID     uuid.UUID          `db:"user_id" json:"userId"`
	Type       ContributionType   `db:"type" json:"type"`
	Status     ContributionStatus `db:"status" json:"status"`
	Difficulty string             `db:"difficulty" json:"difficulty,omitempty"`

	CompanyType     string `db:"company_type" json:"companyType,omitempty"`
	Role            string `db:"role" json:"role,omitempty"`
	ExperienceLevel string `db:"experience_level" json:"experienceLevel,omitempty"`
	CompanyName     string `db:"company_name" json:"companyName,omitempty"`
	Rounds          string `db:"rounds" json:"rounds,omitempty"`
	Questions       string `db:"questions" json:"questions,omitempty"`
	Tips            string `db:"tips" json:"tips,omitempty"`

	Title        string `db:"title" json:"title,omitempty"`
	Description  string `db:"description" json:"description,omitempty"`
	Category     string `db:"category" json:"category,omitempty"`
	SampleInput  string `db:"sample_input" json:"sampleInput,omitempty"`
	SampleOutput string `db:"sample_output" json:"sampleOutput,omitempty"`
	TestCases    string `db:"test_cases" json:"testCases,omitempty"`
	Tags         string `db:"tags" json:"tags,omitempty"`

	ReviewedBy  uuid.NullUUID `db:"reviewed_by" json:"reviewedBy"`
	ReviewedAt  *time.Time    `db:"reviewed_at" json:"reviewedAt,omitempty"`
	ReviewNotes string        `db:"review_notes" json:"reviewNotes,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`

	// Filled only on the admin queue.
	SubmitterName  string `db:"submitter_name" json:"submitterName,omitempty"`
	SubmitterEmail string `db:"submitter_email" json:"submitterEmail,omitempty"`
}

var contributionDifficulties = map[string]bool{"": true, "easy": true, "medium": true, "hard": true}

// Validate checks the fields a reviewer needs for the contribution type.
func (c *Contribution) Validate() error {
	if !contributionDifficulties[c.Difficulty] {
		return ErrInvalidContribution
	}
	switch c.Type {
	case ContributionExperience:
		if strings.TrimSpace(c.CompanyName) == "" || strings.TrimSpace(c.Questions) == "" {
			return ErrInvalidContribution
		}
	case ContributionQuestion:
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Description) == "" {
			return ErrInvalidContribution
		}
	default:
		return ErrInvalidContribution
	}
	return nil
}

// ContributionReview is an admin decision on a pending contribution.
type ContributionReview struct {
	Status ContributionStatus
	Notes  string
}

type ContributionStats struct {
	Total    int                        `json:"total"`
	ByStatus map[ContributionStatus]int `json:"byStatus"`
}

type ContributionTable struct {
	ID              string
	UserID          string
	Type            string
	Status          string
	Difficulty      string
	CompanyType     string
	Role            string
	ExperienceLevel string
	CompanyName     string
	Rounds          string
	Questions       string
	Tips            string
	Title           string
	Description     string
	Category        string
	SampleInput     string
	SampleOutput    string
	TestCases       string
	Tags            string
	ReviewedBy      string
	ReviewedAt      string
	ReviewNotes     string
	CreatedAt       string
}

func GetContributionTable() ContributionTable {
	return ContributionTable{
		ID:              "id",
		UserID:          "user_id",
		Type:            "type",
		Status:          "status",
		Difficulty:      "difficulty",
		CompanyType:     "company_type",
		Role:            "role",
		ExperienceLevel: "experience_level",
		CompanyName:     "company_name",
		Rounds:          "rounds",
		Questions:       "questions",
		Tips:            "tips",
		Title:           "title",
		Description:     "description",
		Category:        "category",
		SampleInput:     "sample_input",
		SampleOutput:    "sample_output",
		TestCases:       "test_cases",
		Tags:            "tags",
		ReviewedBy:      "reviewed_by",
		ReviewedAt:      "reviewed_at",
		ReviewNotes:     "review_notes",
		CreatedAt:       "created_at",
	}
}

func (ContributionTable) TableName() string {
	return "contributions"
}
