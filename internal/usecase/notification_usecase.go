package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-match/internal/infrastructure/webhook"
	"resume-match/internal/repository"
	"resume-match/internal/ws"

	"github.com/google/uuid"
)

const EventMatchAnalyzed = "match.analyzed"

var ErrNotificationNotFound = errors.New("notification not found")

type NotifyInput struct {
	Type    string
	Title   string
	Message string
	Data    map[string]any
}

type NotificationUsecase interface {
	Notify(ctx context.Context, userID uuid.UUID, in NotifyInput) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]repository.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

// Notifications persists events, pushes them over the websocket hub, and
// fans them out to the user's registered webhooks. Hub and webhook
// failures are logged, never surfaced: the row in the table is the source
// of truth.
type Notifications struct {
	repo       repository.NotificationRepository
	webhooks   repository.WebhookRepository
	hub        *ws.Hub
	dispatcher webhook.Dispatcher
	logger     *log.Logger
}

func NewNotificationUsecase(
	repo repository.NotificationRepository,
	webhooks repository.WebhookRepository,
	hub *ws.Hub,
	dispatcher webhook.Dispatcher,
	logger *log.Logger,
) *Notifications {
	if logger == nil {
		logger = log.Default()
	}
	return &Notifications{repo: repo, webhooks: webhooks, hub: hub, dispatcher: dispatcher, logger: logger}
}

func (u *Notifications) Notify(ctx context.Context, userID uuid.UUID, in NotifyInput) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}

	data := ""
	if len(in.Data) > 0 {
		b, err := json.Marshal(in.Data)
		if err != nil {
			return ErrInvalidInput
		}
		data = string(b)
	}

	n := repository.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    in.Type,
		Title:   in.Title,
		Message: in.Message,
		Data:    data,
	}
	if err := u.repo.Insert(ctx, n); err != nil {
		return ErrInternal
	}

	u.hub.PushNotification(userID, in.Type, in.Title, in.Message, in.Data)
	u.deliverWebhooks(ctx, userID, in)

	return nil
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]repository.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.repo.ListByUser(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.repo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

// NotifyMatchAnalyzed implements MatchNotifier for the matching usecase.
func (u *Notifications) NotifyMatchAnalyzed(ctx context.Context, ownerID uuid.UUID, m repository.Match) {
	err := u.Notify(ctx, ownerID, NotifyInput{
		Type:    EventMatchAnalyzed,
		Title:   "Nova análise de compatibilidade",
		Message: fmt.Sprintf("Seu currículo atingiu %.0f%% de compatibilidade com a vaga.", m.OverallScore*100),
		Data: map[string]any{
			"resume_id":     m.ResumeID.String(),
			"job_id":        m.JobID.String(),
			"overall_score": m.OverallScore,
		},
	})
	if err != nil {
		u.logger.Printf("[notify] match notification failed user=%s: %v", ownerID, err)
	}
}

func (u *Notifications) deliverWebhooks(ctx context.Context, userID uuid.UUID, in NotifyInput) {
	if u.dispatcher == nil || u.webhooks == nil {
		return
	}

	hooks, err := u.webhooks.ListActiveForEvent(ctx, userID, in.Type)
	if err != nil {
		u.logger.Printf("[notify] webhook lookup failed user=%s event=%s: %v", userID, in.Type, err)
		return
	}

	for _, h := range hooks {
		evt := webhook.Event{Event: in.Type, Data: in.Data}
		if err := u.dispatcher.Deliver(ctx, h.URL, evt); err != nil {
			continue
		}
		if err := u.webhooks.TouchLastTriggered(ctx, h.ID, time.Now().UTC()); err != nil {
			u.logger.Printf("[notify] webhook touch failed id=%s: %v", h.ID, err)
		}
	}
}
