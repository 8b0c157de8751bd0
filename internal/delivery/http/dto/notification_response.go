package dto

import (
	"encoding/json"
	"time"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromNotifications(items []repository.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		var data map[string]any
		if n.Data != "" {
			_ = json.Unmarshal([]byte(n.Data), &data)
		}
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      data,
			Read:      n.Read,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

type WebhookResponse struct {
	ID            uuid.UUID  `json:"id"`
	URL           string     `json:"url"`
	Events        []string   `json:"events"`
	IsActive      bool       `json:"is_active"`
	LastTriggered *time.Time `json:"last_triggered,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromWebhook(w repository.Webhook) WebhookResponse {
	events := w.Events
	if events == nil {
		events = []string{}
	}
	return WebhookResponse{
		ID:            w.ID,
		URL:           w.URL,
		Events:        events,
		IsActive:      w.IsActive,
		LastTriggered: w.LastTriggered,
		CreatedAt:     w.CreatedAt,
	}
}

func FromWebhooks(items []repository.Webhook) []WebhookResponse {
	out := make([]WebhookResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWebhook(w))
	}
	return out
}
