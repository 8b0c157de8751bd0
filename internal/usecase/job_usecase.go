package usecase

import (
	"context"
	"errors"
	"strings"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type CreateJobInput struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements string
	Stack        []string
	Level        string
	SalaryRange  string
}

type UpdateJobInput struct {
	Title        *string
	Company      *string
	Location     *string
	Description  *string
	Requirements *string
	Stack        []string
	Level        *string
	SalaryRange  *string
	IsActive     *bool
}

type JobUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateJobInput) (repository.Job, error)
	Get(ctx context.Context, jobID uuid.UUID) (repository.Job, error)
	Update(ctx context.Context, userID, jobID uuid.UUID, in UpdateJobInput) (repository.Job, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
	List(ctx context.Context, f repository.JobFilter) ([]repository.Job, int, error)
}

type Jobs struct {
	jobs  repository.JobRepository
	cache Cache
}

func NewJobUsecase(jobs repository.JobRepository, cache Cache) *Jobs {
	return &Jobs{jobs: jobs, cache: cache}
}

func (u *Jobs) Create(ctx context.Context, userID uuid.UUID, in CreateJobInput) (repository.Job, error) {
	if userID == uuid.Nil {
		return repository.Job{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return repository.Job{}, ErrInvalidInput
	}

	j := repository.Job{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Company:      strings.TrimSpace(in.Company),
		Location:     strings.TrimSpace(in.Location),
		Description:  description,
		Requirements: strings.TrimSpace(in.Requirements),
		Stack:        cleanStack(in.Stack),
		Level:        strings.ToLower(strings.TrimSpace(in.Level)),
		SalaryRange:  strings.TrimSpace(in.SalaryRange),
		IsActive:     true,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return repository.Job{}, ErrInternal
	}

	u.invalidateJobCaches(ctx)
	return u.mustGet(ctx, j.ID)
}

func (u *Jobs) Get(ctx context.Context, jobID uuid.UUID) (repository.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, userID, jobID uuid.UUID, in UpdateJobInput) (repository.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	if j.UserID != userID {
		return repository.Job{}, ErrForbidden
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return repository.Job{}, ErrInvalidInput
		}
		j.Title = title
	}
	if in.Company != nil {
		j.Company = strings.TrimSpace(*in.Company)
	}
	if in.Location != nil {
		j.Location = strings.TrimSpace(*in.Location)
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return repository.Job{}, ErrInvalidInput
		}
		j.Description = desc
	}
	if in.Requirements != nil {
		j.Requirements = strings.TrimSpace(*in.Requirements)
	}
	if in.Stack != nil {
		j.Stack = cleanStack(in.Stack)
	}
	if in.Level != nil {
		j.Level = strings.ToLower(strings.TrimSpace(*in.Level))
	}
	if in.SalaryRange != nil {
		j.SalaryRange = strings.TrimSpace(*in.SalaryRange)
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		return repository.Job{}, ErrInternal
	}

	u.invalidateJobCaches(ctx)
	return u.mustGet(ctx, jobID)
}

func (u *Jobs) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := u.jobs.Delete(ctx, jobID, userID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	u.invalidateJobCaches(ctx)
	return nil
}

func (u *Jobs) List(ctx context.Context, f repository.JobFilter) ([]repository.Job, int, error) {
	items, total, err := u.jobs.ListActive(ctx, f)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return items, total, nil
}

func (u *Jobs) mustGet(ctx context.Context, jobID uuid.UUID) (repository.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return repository.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) invalidateJobCaches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "recommend:jobs:*")
	_ = u.cache.DeleteByPattern(ctx, "recommend:resumes:*")
}

func cleanStack(stack []string) []string {
	out := make([]string, 0, len(stack))
	for _, s := range stack {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
