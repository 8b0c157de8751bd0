package usecase

import (
	"context"
	"sort"
	"strings"

	"resume-match/internal/repository"
	"resume-match/internal/search"
)

type SearchResumesInput struct {
	Query  string
	Skills []string
	Limit  int
	Offset int
}

type SearchJobsInput struct {
	Query    string
	Stack    []string
	Level    string
	Location string
	Limit    int
	Offset   int
}

type ResumeSearchHit struct {
	Resume     repository.ResumeWithVersion
	Relevance  float64
	Highlights []string
}

type JobSearchHit struct {
	Job        repository.Job
	Relevance  float64
	Highlights []string
}

type SearchUsecase interface {
	SearchResumes(ctx context.Context, in SearchResumesInput) ([]ResumeSearchHit, int, error)
	SearchJobs(ctx context.Context, in SearchJobsInput) ([]JobSearchHit, int, error)
}

type Search struct {
	repo repository.SearchRepository
}

func NewSearchUsecase(repo repository.SearchRepository) *Search {
	return &Search{repo: repo}
}

func (u *Search) SearchResumes(ctx context.Context, in SearchResumesInput) ([]ResumeSearchHit, int, error) {
	keywords := search.ExtractKeywords(in.Query)

	items, total, err := u.repo.SearchPublicResumes(ctx, repository.ResumeSearchFilter{
		Keywords: keywords,
		Skills:   in.Skills,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, 0, ErrInternal
	}

	hits := make([]ResumeSearchHit, 0, len(items))
	for _, rv := range items {
		doc := resumeDocument(rv)
		hits = append(hits, ResumeSearchHit{
			Resume:     rv,
			Relevance:  search.Relevance(doc, keywords),
			Highlights: search.Highlights(doc, keywords),
		})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Relevance > hits[b].Relevance
	})
	return hits, total, nil
}

func (u *Search) SearchJobs(ctx context.Context, in SearchJobsInput) ([]JobSearchHit, int, error) {
	keywords := search.ExtractKeywords(in.Query)

	items, total, err := u.repo.SearchActiveJobs(ctx, repository.JobSearchFilter{
		Keywords: keywords,
		Stack:    in.Stack,
		Level:    strings.ToLower(strings.TrimSpace(in.Level)),
		Location: strings.TrimSpace(in.Location),
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, 0, ErrInternal
	}

	hits := make([]JobSearchHit, 0, len(items))
	for _, j := range items {
		doc := jobDocument(j)
		hits = append(hits, JobSearchHit{
			Job:        j,
			Relevance:  search.Relevance(doc, keywords),
			Highlights: search.Highlights(doc, keywords),
		})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Relevance > hits[b].Relevance
	})
	return hits, total, nil
}

func resumeDocument(rv repository.ResumeWithVersion) string {
	parts := []string{rv.Resume.Title, rv.Version.Summary, rv.Version.Content}
	if len(rv.Version.Tags) > 0 {
		parts = append(parts, strings.Join(rv.Version.Tags, " "))
	}
	return strings.Join(parts, " ")
}

func jobDocument(j repository.Job) string {
	parts := []string{j.Title, j.Company, j.Description, j.Requirements}
	if len(j.Stack) > 0 {
		parts = append(parts, strings.Join(j.Stack, " "))
	}
	return strings.Join(parts, " ")
}
