package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

var ErrWebhookNotFound = errors.New("webhook not found")

type RegisterWebhookInput struct {
	URL    string
	Events []string
	Secret string
}

type WebhookUsecase interface {
	Register(ctx context.Context, userID uuid.UUID, in RegisterWebhookInput) (repository.Webhook, error)
	List(ctx context.Context, userID uuid.UUID) ([]repository.Webhook, error)
	Delete(ctx context.Context, userID, webhookID uuid.UUID) error
}

type Webhooks struct {
	repo repository.WebhookRepository
}

func NewWebhookUsecase(repo repository.WebhookRepository) *Webhooks {
	return &Webhooks{repo: repo}
}

func (u *Webhooks) Register(ctx context.Context, userID uuid.UUID, in RegisterWebhookInput) (repository.Webhook, error) {
	if userID == uuid.Nil {
		return repository.Webhook{}, ErrUnauthorized
	}

	target := strings.TrimSpace(in.URL)
	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return repository.Webhook{}, ErrInvalidInput
	}

	events := make([]string, 0, len(in.Events))
	for _, e := range in.Events {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		events = append(events, e)
	}
	if len(events) == 0 {
		return repository.Webhook{}, ErrInvalidInput
	}

	w := repository.Webhook{
		ID:       uuid.New(),
		UserID:   userID,
		URL:      target,
		Events:   events,
		Secret:   strings.TrimSpace(in.Secret),
		IsActive: true,
	}
	if err := u.repo.Insert(ctx, w); err != nil {
		return repository.Webhook{}, ErrInternal
	}
	return w, nil
}

func (u *Webhooks) List(ctx context.Context, userID uuid.UUID) ([]repository.Webhook, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Webhooks) Delete(ctx context.Context, userID, webhookID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.repo.Delete(ctx, webhookID, userID); err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			return ErrWebhookNotFound
		}
		return ErrInternal
	}
	return nil
}
