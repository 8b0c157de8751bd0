package usecase

import (
	"context"
	"errors"
	"sort"

	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pairwise scoring is independent per candidate, so the fan-out below is
// bounded only to keep memory flat on large boards.
const recommendConcurrency = 8

const candidatePoolSize = 500

type RecommendParams struct {
	Limit    int
	MinScore float64
}

type JobRecommendation struct {
	Job    repository.Job
	Result matching.Result
}

type ResumeRecommendation struct {
	Resume repository.ResumeWithVersion
	Result matching.Result
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, requesterID, resumeID uuid.UUID, p RecommendParams) ([]JobRecommendation, error)
	RecommendResumes(ctx context.Context, requesterID, jobID uuid.UUID, p RecommendParams) ([]ResumeRecommendation, error)
}

type Recommendation struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository
	cache   Cache
}

func NewRecommendationUsecase(resumes repository.ResumeRepository, jobs repository.JobRepository, cache Cache) *Recommendation {
	return &Recommendation{resumes: resumes, jobs: jobs, cache: cache}
}

func (u *Recommendation) RecommendJobs(ctx context.Context, requesterID, resumeID uuid.UUID, p RecommendParams) ([]JobRecommendation, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	p = clampRecommendParams(p)

	rv, err := u.resumes.GetWithLatestVersion(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}
	if !rv.Resume.IsPublic && rv.Resume.UserID != requesterID {
		return nil, ErrForbidden
	}

	key := recommendJobsCacheKey(resumeID, p.Limit, p.MinScore)
	if u.cache != nil {
		var cached []JobRecommendation
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, _, err := u.jobs.ListActive(ctx, repository.JobFilter{Limit: candidatePoolSize})
	if err != nil {
		return nil, ErrInternal
	}

	results := make([]matching.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recommendConcurrency)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = matching.Compute(matchInput(rv, jobs[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	out := make([]JobRecommendation, 0, len(jobs))
	for i, j := range jobs {
		if results[i].OverallScore < p.MinScore {
			continue
		}
		out = append(out, JobRecommendation{Job: j, Result: results[i]})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Result.OverallScore > out[b].Result.OverallScore
	})
	if len(out) > p.Limit {
		out = out[:p.Limit]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

func (u *Recommendation) RecommendResumes(ctx context.Context, requesterID, jobID uuid.UUID, p RecommendParams) ([]ResumeRecommendation, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	p = clampRecommendParams(p)

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	key := recommendResumesCacheKey(jobID, p.Limit, p.MinScore)
	if u.cache != nil {
		var cached []ResumeRecommendation
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	resumes, err := u.resumes.ListPublic(ctx, candidatePoolSize)
	if err != nil {
		return nil, ErrInternal
	}

	results := make([]matching.Result, len(resumes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recommendConcurrency)
	for i := range resumes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = matching.Compute(matchInput(resumes[i], job))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	out := make([]ResumeRecommendation, 0, len(resumes))
	for i, rv := range resumes {
		if results[i].OverallScore < p.MinScore {
			continue
		}
		out = append(out, ResumeRecommendation{Resume: rv, Result: results[i]})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Result.OverallScore > out[b].Result.OverallScore
	})
	if len(out) > p.Limit {
		out = out[:p.Limit]
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

func clampRecommendParams(p RecommendParams) RecommendParams {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 50 {
		p.Limit = 50
	}
	if p.MinScore < 0 {
		p.MinScore = 0
	}
	if p.MinScore > 1 {
		p.MinScore = 1
	}
	return p
}
