package dto

import (
	"time"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements,omitempty"`
	Stack        []string  `json:"stack"`
	Level        string    `json:"level,omitempty"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromJob(j repository.Job) JobResponse {
	stack := j.Stack
	if stack == nil {
		stack = []string{}
	}
	return JobResponse{
		ID:           j.ID,
		UserID:       j.UserID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Description:  j.Description,
		Requirements: j.Requirements,
		Stack:        stack,
		Level:        j.Level,
		SalaryRange:  j.SalaryRange,
		IsActive:     j.IsActive,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func FromJobs(items []repository.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, FromJob(j))
	}
	return out
}
