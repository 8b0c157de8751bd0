package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

type mockResumeRepo struct {
	rv  repository.ResumeWithVersion
	err error

	public []repository.ResumeWithVersion
}

func (m *mockResumeRepo) CreateWithVersion(context.Context, repository.Resume, repository.ResumeVersion) error {
	return nil
}
func (m *mockResumeRepo) GetByID(context.Context, uuid.UUID) (repository.Resume, error) {
	return m.rv.Resume, m.err
}
func (m *mockResumeRepo) GetWithLatestVersion(context.Context, uuid.UUID) (repository.ResumeWithVersion, error) {
	return m.rv, m.err
}
func (m *mockResumeRepo) LatestVersionNumber(context.Context, uuid.UUID) (int, error) {
	return m.rv.Version.VersionNumber, nil
}
func (m *mockResumeRepo) AddVersion(context.Context, repository.ResumeVersion) error { return nil }
func (m *mockResumeRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]repository.ResumeWithVersion, error) {
	return nil, nil
}
func (m *mockResumeRepo) ListPublic(context.Context, int) ([]repository.ResumeWithVersion, error) {
	return m.public, nil
}
func (m *mockResumeRepo) SetVisibility(context.Context, uuid.UUID, uuid.UUID, bool) error {
	return nil
}
func (m *mockResumeRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type mockJobRepo struct {
	job repository.Job
	err error

	active []repository.Job
}

func (m *mockJobRepo) Create(context.Context, repository.Job) error { return nil }
func (m *mockJobRepo) GetByID(context.Context, uuid.UUID) (repository.Job, error) {
	return m.job, m.err
}
func (m *mockJobRepo) Update(context.Context, repository.Job) error      { return nil }
func (m *mockJobRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (m *mockJobRepo) ListActive(context.Context, repository.JobFilter) ([]repository.Job, int, error) {
	return m.active, len(m.active), nil
}

type mockMatchRepo struct {
	inserted []repository.Match
	insErr   error

	history []repository.Match
}

func (m *mockMatchRepo) Insert(_ context.Context, match repository.Match) error {
	if m.insErr != nil {
		return m.insErr
	}
	m.inserted = append(m.inserted, match)
	return nil
}
func (m *mockMatchRepo) ListByPair(context.Context, uuid.UUID, uuid.UUID, int) ([]repository.Match, error) {
	return m.history, nil
}

type mockNotifier struct {
	ownerID uuid.UUID
	match   repository.Match
	calls   int
}

func (m *mockNotifier) NotifyMatchAnalyzed(_ context.Context, ownerID uuid.UUID, match repository.Match) {
	m.ownerID = ownerID
	m.match = match
	m.calls++
}

func publicResume(owner uuid.UUID) repository.ResumeWithVersion {
	return repository.ResumeWithVersion{
		Resume: repository.Resume{ID: uuid.New(), UserID: owner, Title: "Backend", IsPublic: true},
		Version: repository.ResumeVersion{
			VersionNumber: 1,
			Content:       "5 anos de experiência com Python, Docker e PostgreSQL. Bacharel em Ciência da Computação.",
			Summary:       "Desenvolvedor backend pleno",
			Tags:          []string{"python", "docker"},
		},
	}
}

func backendJob() repository.Job {
	return repository.Job{
		ID:           uuid.New(),
		Title:        "Desenvolvedor Backend",
		Description:  "Vaga para backend com 3 anos de experiência",
		Requirements: "Python, Docker, PostgreSQL. Graduação em computação.",
		Stack:        []string{"python", "docker", "postgresql"},
		Level:        "pleno",
	}
}

func TestMatchingAnalyze_PersistsAndNotifies(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)
	job := backendJob()

	matches := &mockMatchRepo{}
	notifier := &mockNotifier{}
	uc := NewMatchingUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{job: job}, matches, notifier)

	res, err := uc.Analyze(context.Background(), owner, rv.Resume.ID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.OverallScore <= 0 || res.OverallScore > 1 {
		t.Fatalf("score out of range: %v", res.OverallScore)
	}

	if len(matches.inserted) != 1 {
		t.Fatalf("expected 1 inserted match, got %d", len(matches.inserted))
	}
	row := matches.inserted[0]
	if row.ResumeID != rv.Resume.ID || row.JobID != job.ID {
		t.Fatalf("inserted row has wrong ids: %+v", row)
	}
	if row.OverallScore != res.OverallScore {
		t.Fatalf("persisted score %v differs from result %v", row.OverallScore, res.OverallScore)
	}

	if notifier.calls != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.calls)
	}
	if notifier.ownerID != owner {
		t.Fatalf("notified wrong owner: %s", notifier.ownerID)
	}
	if notifier.match.ID != row.ID {
		t.Fatalf("notified a different match row")
	}
}

func TestMatchingAnalyze_PrivateResumeOfAnotherUser(t *testing.T) {
	rv := publicResume(uuid.New())
	rv.Resume.IsPublic = false

	uc := NewMatchingUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{job: backendJob()}, &mockMatchRepo{}, nil)

	_, err := uc.Analyze(context.Background(), uuid.New(), rv.Resume.ID, uuid.New())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMatchingAnalyze_PrivateResumeOwnedByRequester(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)
	rv.Resume.IsPublic = false

	uc := NewMatchingUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{job: backendJob()}, &mockMatchRepo{}, nil)

	if _, err := uc.Analyze(context.Background(), owner, rv.Resume.ID, uuid.New()); err != nil {
		t.Fatalf("owner should analyze own private resume: %v", err)
	}
}

func TestMatchingAnalyze_ResumeNotFound(t *testing.T) {
	uc := NewMatchingUsecase(
		&mockResumeRepo{err: repository.ErrResumeNotFound},
		&mockJobRepo{job: backendJob()},
		&mockMatchRepo{},
		nil,
	)
	_, err := uc.Analyze(context.Background(), uuid.New(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestMatchingAnalyze_JobNotFound(t *testing.T) {
	owner := uuid.New()
	uc := NewMatchingUsecase(
		&mockResumeRepo{rv: publicResume(owner)},
		&mockJobRepo{err: repository.ErrJobNotFound},
		&mockMatchRepo{},
		nil,
	)
	_, err := uc.Analyze(context.Background(), owner, uuid.New(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatchingAnalyze_InsertFailure(t *testing.T) {
	owner := uuid.New()
	notifier := &mockNotifier{}
	uc := NewMatchingUsecase(
		&mockResumeRepo{rv: publicResume(owner)},
		&mockJobRepo{job: backendJob()},
		&mockMatchRepo{insErr: errors.New("db down")},
		notifier,
	)
	_, err := uc.Analyze(context.Background(), owner, uuid.New(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatalf("must not notify when persist fails")
	}
}

func TestMatchingHistory_OwnerOnly(t *testing.T) {
	rv := publicResume(uuid.New())
	uc := NewMatchingUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{}, &mockMatchRepo{}, nil)

	_, err := uc.History(context.Background(), uuid.New(), rv.Resume.ID, uuid.New(), 10)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestMatchingHistory_ReturnsRows(t *testing.T) {
	owner := uuid.New()
	rv := publicResume(owner)
	rows := []repository.Match{{ID: uuid.New()}, {ID: uuid.New()}}
	uc := NewMatchingUsecase(&mockResumeRepo{rv: rv}, &mockJobRepo{}, &mockMatchRepo{history: rows}, nil)

	got, err := uc.History(context.Background(), owner, rv.Resume.ID, uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
}
