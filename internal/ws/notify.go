package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationEvent struct {
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// PushNotification serializes the event and queues it for the user.
// Safe on a nil hub.
func (h *Hub) PushNotification(userID uuid.UUID, eventType, title, message string, data map[string]any) {
	if h == nil {
		return
	}

	evt := NotificationEvent{
		Type:      eventType,
		Title:     title,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(userID, b)
}
