package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

type mockCache struct {
	store map[string][]byte

	gets    int
	sets    int
	deletes []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (c *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	return nil
}

func activeJob(title string, stack []string) repository.Job {
	return repository.Job{
		ID:          uuid.New(),
		Title:       title,
		Description: "vaga " + title,
		Stack:       stack,
		Level:       "pleno",
		IsActive:    true,
	}
}

func TestRecommendJobs_OrdersByScoreDesc(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)

	strong := activeJob("Backend Python", []string{"python", "docker"})
	weak := activeJob("Mobile", []string{"swift", "kotlin", "flutter"})

	uc := NewRecommendationUsecase(
		&mockResumeRepo{rv: rv},
		&mockJobRepo{active: []repository.Job{weak, strong}},
		nil,
	)

	got, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].Job.ID != strong.ID {
		t.Fatalf("expected stack-matching job first, got %q", got[0].Job.Title)
	}
	if got[0].Result.OverallScore < got[1].Result.OverallScore {
		t.Fatalf("results not sorted: %v < %v", got[0].Result.OverallScore, got[1].Result.OverallScore)
	}
}

func TestRecommendJobs_MinScoreFilters(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)

	jobs := []repository.Job{
		activeJob("Backend Python", []string{"python", "docker"}),
		activeJob("Mobile", []string{"swift", "kotlin", "flutter"}),
	}
	uc := NewRecommendationUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{active: jobs}, nil)

	all, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cutoff := all[0].Result.OverallScore

	filtered, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 10, MinScore: cutoff})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, rec := range filtered {
		if rec.Result.OverallScore < cutoff {
			t.Fatalf("min_score not honored: %v < %v", rec.Result.OverallScore, cutoff)
		}
	}
	if len(filtered) >= len(all) && all[0].Result.OverallScore != all[len(all)-1].Result.OverallScore {
		t.Fatalf("expected cutoff to drop the weaker job")
	}
}

func TestRecommendJobs_TruncatesToLimit(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)

	jobs := make([]repository.Job, 5)
	for i := range jobs {
		jobs[i] = activeJob("Backend", []string{"python"})
	}
	uc := NewRecommendationUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{active: jobs}, nil)

	got, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(got))
	}
}

func TestRecommendJobs_CacheHitSkipsScoring(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)
	cache := newMockCache()

	jobs := []repository.Job{activeJob("Backend", []string{"python"})}
	uc := NewRecommendationUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{active: jobs}, cache)

	first, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}

	second, err := uc.RecommendJobs(context.Background(), owner, rv.Resume.ID, RecommendParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("second call should come from cache, writes=%d", cache.sets)
	}
	if len(second) != len(first) || second[0].Job.ID != first[0].Job.ID {
		t.Fatalf("cached result differs from computed one")
	}
}

func TestRecommendJobs_PrivateResumeOfAnotherUser(t *testing.T) {
	rv := publicResume(uuid.New())
	rv.Resume.IsPublic = false
	uc := NewRecommendationUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{}, nil)

	_, err := uc.RecommendJobs(context.Background(), uuid.New(), rv.Resume.ID, RecommendParams{})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecommendResumes_OnlyPublicPool(t *testing.T) {
	requester := uuid.New()
	job := backendJob()

	strong := publicResume(uuid.New())
	weak := publicResume(uuid.New())
	weak.Version.Content = "Designer gráfico com foco em branding"
	weak.Version.Tags = []string{"photoshop"}

	uc := NewRecommendationUsecase(
		&mockResumeRepo{public: []repository.ResumeWithVersion{weak, strong}},
		&mockJobRepo{job: job},
		nil,
	)

	got, err := uc.RecommendResumes(context.Background(), requester, job.ID, RecommendParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].Resume.Resume.ID != strong.Resume.ID {
		t.Fatalf("expected matching resume first")
	}
}

func TestRecommendResumes_JobNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(&mockResumeRepo{}, &mockJobRepo{err: repository.ErrJobNotFound}, nil)
	_, err := uc.RecommendResumes(context.Background(), uuid.New(), uuid.New(), RecommendParams{})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestClampRecommendParams(t *testing.T) {
	cases := []struct {
		in   RecommendParams
		want RecommendParams
	}{
		{RecommendParams{}, RecommendParams{Limit: 10}},
		{RecommendParams{Limit: -3, MinScore: -1}, RecommendParams{Limit: 10, MinScore: 0}},
		{RecommendParams{Limit: 999, MinScore: 2}, RecommendParams{Limit: 50, MinScore: 1}},
		{RecommendParams{Limit: 5, MinScore: 0.7}, RecommendParams{Limit: 5, MinScore: 0.7}},
	}
	for _, c := range cases {
		if got := clampRecommendParams(c.in); got != c.want {
			t.Fatalf("clampRecommendParams(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
