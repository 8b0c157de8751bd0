package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidInput   = errors.New("invalid input")
)

type CreateResumeInput struct {
	Title    string
	Content  string
	Summary  string
	Tags     []string
	IsPublic bool
}

type UpdateResumeInput struct {
	Content string
	Summary string
	Tags    []string
}

type ResumeUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateResumeInput) (repository.ResumeWithVersion, error)
	Get(ctx context.Context, requesterID, resumeID uuid.UUID) (repository.ResumeWithVersion, error)
	Update(ctx context.Context, userID, resumeID uuid.UUID, in UpdateResumeInput) (repository.ResumeWithVersion, error)
	ListOwn(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.ResumeWithVersion, error)
	SetVisibility(ctx context.Context, userID, resumeID uuid.UUID, isPublic bool) error
	Delete(ctx context.Context, userID, resumeID uuid.UUID) error
}

type Resume struct {
	resumes repository.ResumeRepository
	cache   Cache
}

func NewResumeUsecase(resumes repository.ResumeRepository, cache Cache) *Resume {
	return &Resume{resumes: resumes, cache: cache}
}

func (u *Resume) Create(ctx context.Context, userID uuid.UUID, in CreateResumeInput) (repository.ResumeWithVersion, error) {
	if userID == uuid.Nil {
		return repository.ResumeWithVersion{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return repository.ResumeWithVersion{}, ErrInvalidInput
	}

	resumeID := uuid.New()
	res := repository.Resume{
		ID:       resumeID,
		UserID:   userID,
		Title:    title,
		IsPublic: in.IsPublic,
	}
	v := newVersion(resumeID, 1, content, in.Summary, in.Tags)

	if err := u.resumes.CreateWithVersion(ctx, res, v); err != nil {
		return repository.ResumeWithVersion{}, ErrInternal
	}

	u.invalidateResumeCaches(ctx)
	return u.getCreated(ctx, resumeID)
}

func (u *Resume) Get(ctx context.Context, requesterID, resumeID uuid.UUID) (repository.ResumeWithVersion, error) {
	rv, err := u.resumes.GetWithLatestVersion(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return repository.ResumeWithVersion{}, ErrResumeNotFound
		}
		return repository.ResumeWithVersion{}, ErrInternal
	}

	if !rv.Resume.IsPublic && rv.Resume.UserID != requesterID {
		return repository.ResumeWithVersion{}, ErrForbidden
	}
	return rv, nil
}

// Update never mutates an existing version; every change appends the next
// version_number so earlier match results stay reproducible.
func (u *Resume) Update(ctx context.Context, userID, resumeID uuid.UUID, in UpdateResumeInput) (repository.ResumeWithVersion, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return repository.ResumeWithVersion{}, ErrInvalidInput
	}

	res, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return repository.ResumeWithVersion{}, ErrResumeNotFound
		}
		return repository.ResumeWithVersion{}, ErrInternal
	}
	if res.UserID != userID {
		return repository.ResumeWithVersion{}, ErrForbidden
	}

	latest, err := u.resumes.LatestVersionNumber(ctx, resumeID)
	if err != nil {
		return repository.ResumeWithVersion{}, ErrInternal
	}

	v := newVersion(resumeID, latest+1, content, in.Summary, in.Tags)
	if err := u.resumes.AddVersion(ctx, v); err != nil {
		return repository.ResumeWithVersion{}, ErrInternal
	}

	u.invalidateResumeCaches(ctx)
	return u.getCreated(ctx, resumeID)
}

func (u *Resume) ListOwn(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.ResumeWithVersion, error) {
	out, err := u.resumes.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Resume) SetVisibility(ctx context.Context, userID, resumeID uuid.UUID, isPublic bool) error {
	if err := u.resumes.SetVisibility(ctx, resumeID, userID, isPublic); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}
	u.invalidateResumeCaches(ctx)
	return nil
}

func (u *Resume) Delete(ctx context.Context, userID, resumeID uuid.UUID) error {
	if err := u.resumes.Delete(ctx, resumeID, userID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}
	u.invalidateResumeCaches(ctx)
	return nil
}

func (u *Resume) getCreated(ctx context.Context, resumeID uuid.UUID) (repository.ResumeWithVersion, error) {
	rv, err := u.resumes.GetWithLatestVersion(ctx, resumeID)
	if err != nil {
		return repository.ResumeWithVersion{}, ErrInternal
	}
	return rv, nil
}

func (u *Resume) invalidateResumeCaches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "recommend:resumes:*")
	_ = u.cache.DeleteByPattern(ctx, "recommend:jobs:*")
}

func newVersion(resumeID uuid.UUID, number int, content, summary string, tags []string) repository.ResumeVersion {
	id := uuid.New()
	sum := sha256.Sum256([]byte(content))
	key := fmt.Sprintf("resumes/%s/v%d", resumeID, number)

	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		cleaned = append(cleaned, t)
	}

	return repository.ResumeVersion{
		ID:            id,
		ResumeID:      resumeID,
		VersionNumber: number,
		StorageKey:    key,
		StorageURL:    "/files/" + key,
		Content:       content,
		ContentHash:   hex.EncodeToString(sum[:]),
		Summary:       strings.TrimSpace(summary),
		Tags:          cleaned,
	}
}
