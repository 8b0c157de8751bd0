package repository

import (
	"context"
	"errors"
	"time"

	"resume-match/internal/database"

	"github.com/google/uuid"
)

var ErrWebhookNotFound = errors.New("webhook not found")

type Webhook struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	URL           string
	Events        []string
	Secret        string
	IsActive      bool
	LastTriggered *time.Time
	CreatedAt     time.Time
}

type WebhookRepository interface {
	Insert(ctx context.Context, w Webhook) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Webhook, error)
	ListActiveForEvent(ctx context.Context, userID uuid.UUID, event string) ([]Webhook, error)
	TouchLastTriggered(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type PostgresWebhookRepository struct {
	db database.DB
}

func NewPostgresWebhookRepository(db database.DB) *PostgresWebhookRepository {
	return &PostgresWebhookRepository{db: db}
}

const webhookColumns = `id, user_id, url, events, COALESCE(secret, ''), is_active, last_triggered, created_at`

func (r *PostgresWebhookRepository) Insert(ctx context.Context, w Webhook) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO webhooks (id, user_id, url, events, secret, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.UserID, w.URL, w.Events, w.Secret, w.IsActive,
	)
	return err
}

func (r *PostgresWebhookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Webhook, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+webhookColumns+` FROM webhooks WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWebhooks(rows)
}

func (r *PostgresWebhookRepository) ListActiveForEvent(ctx context.Context, userID uuid.UUID, event string) ([]Webhook, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+webhookColumns+` FROM webhooks
		 WHERE user_id = $1 AND is_active = TRUE AND events @> ARRAY[$2]::TEXT[]`,
		userID, event,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWebhooks(rows)
}

func (r *PostgresWebhookRepository) TouchLastTriggered(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE webhooks SET last_triggered = $2 WHERE id = $1`,
		id, at,
	)
	return err
}

func (r *PostgresWebhookRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM webhooks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWebhookNotFound
	}
	return nil
}

func collectWebhooks(rows database.Rows) ([]Webhook, error) {
	out := make([]Webhook, 0)
	for rows.Next() {
		var w Webhook
		if err := rows.Scan(&w.ID, &w.UserID, &w.URL, &w.Events, &w.Secret, &w.IsActive, &w.LastTriggered, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
