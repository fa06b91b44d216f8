package contributions

import "gitlab.com/codeprep.net/internal/domain"

type SubmitRequest struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`

	CompanyType     string `json:"companyType"`
	Role            string `json:"role"`
	ExperienceLevel string `json:"experienceLevel"`
	CompanyName     string `json:"companyName"`
	Rounds          string `json:"rounds"`
	Questions       string `json:"questions"`
	Tips            string `json:"tips"`

	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	SampleInput  string `json:"sampleInput"`
	SampleOutput string `json:"sampleOutput"`
	TestCases    string `json:"testCases"`
	Tags         string `json:"tags"`
}

func (r *SubmitRequest) toDomain() *domain.Contribution {
	return &domain.Contribution{
		Type:            domain.ContributionType(r.Type),
		Difficulty:      r.Difficulty,
		CompanyType:     r.CompanyType,
		Role:            r.Role,
		ExperienceLevel: r.ExperienceLevel,
		CompanyName:     r.CompanyName,
		Rounds:          r.Rounds,
		Questions:       r.Questions,
		Tips:            r.Tips,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		SampleInput:     r.SampleInput,
		SampleOutput:    r.SampleOutput,
		TestCases:       r.TestCases,
		Tags:            r.Tags,
	}
}

type ReviewRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`
}
