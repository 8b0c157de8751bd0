package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Cache is what the usecases need from the Redis layer. A nil-safe
// implementation that bypasses on outage satisfies it too.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type recommendCacheKeyInput struct {
	Direction string    `json:"direction"`
	AnchorID  uuid.UUID `json:"anchor_id"`
	Limit     int       `json:"limit"`
	MinScore  float64   `json:"min_score"`
}

func recommendJobsCacheKey(resumeID uuid.UUID, limit int, minScore float64) string {
	return "recommend:jobs:" + recommendCacheHash(recommendCacheKeyInput{
		Direction: "jobs",
		AnchorID:  resumeID,
		Limit:     limit,
		MinScore:  minScore,
	})
}

func recommendResumesCacheKey(jobID uuid.UUID, limit int, minScore float64) string {
	return "recommend:resumes:" + recommendCacheHash(recommendCacheKeyInput{
		Direction: "resumes",
		AnchorID:  jobID,
		Limit:     limit,
		MinScore:  minScore,
	})
}

func recommendCacheHash(in recommendCacheKeyInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
