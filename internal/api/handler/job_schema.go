package handler

import "github.com/jobmatch/jobmatch-api/internal/core/domain"

type jobPostResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"job_title"`
	CompanyName      string `json:"company_name"`
	Location         string `json:"location"`
	EmploymentType   string `json:"employment_type"`
	SalaryFrom       *int   `json:"salary_from"`
	SalaryTo         *int   `json:"salary_to"`
	Description      string `json:"job_description"`
	Responsibilities string `json:"key_responsibilities"`
	Email            string `json:"email"`
	LogoFilename     string `json:"logo_filename"`
	IsOpen           bool   `json:"is_open"`
}

func toJobPostResponse(p *domain.JobPosting) jobPostResponse {
	return jobPostResponse{
		ID:               p.ID,
		Title:            p.Title,
		CompanyName:      p.CompanyName,
		Location:         p.Location,
		EmploymentType:   p.EmploymentType,
		SalaryFrom:       p.SalaryFrom,
		SalaryTo:         p.SalaryTo,
		Description:      p.Description,
		Responsibilities: p.Responsibilities,
		Email:            p.OwnerEmail,
		LogoFilename:     p.LogoFilename,
		IsOpen:           p.IsOpen,
	}
}

func toJobPostResponses(list []*domain.JobPosting) []jobPostResponse {
	out := make([]jobPostResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toJobPostResponse(p))
	}
	return out
}

type toggleRequest struct {
	IsOpen bool `json:"is_open"`
}

type toggleResponse struct {
	Success bool `json:"success"`
	IsOpen  bool `json:"is_open"`
}
