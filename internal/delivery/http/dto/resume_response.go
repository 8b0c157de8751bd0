package dto

import (
	"time"

	"resume-match/internal/repository"

	"github.com/google/uuid"
)

type ResumeVersionResponse struct {
	VersionNumber int       `json:"version_number"`
	StorageKey    string    `json:"storage_key"`
	StorageURL    string    `json:"storage_url"`
	ContentHash   string    `json:"content_hash"`
	Summary       string    `json:"summary,omitempty"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResumeResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Title     string                `json:"title"`
	IsPublic  bool                  `json:"is_public"`
	CreatedAt time.Time             `json:"created_at"`
	Version   ResumeVersionResponse `json:"version"`
}

func FromResumeWithVersion(rv repository.ResumeWithVersion) ResumeResponse {
	tags := rv.Version.Tags
	if tags == nil {
		tags = []string{}
	}
	return ResumeResponse{
		ID:        rv.Resume.ID,
		UserID:    rv.Resume.UserID,
		Title:     rv.Resume.Title,
		IsPublic:  rv.Resume.IsPublic,
		CreatedAt: rv.Resume.CreatedAt,
		Version: ResumeVersionResponse{
			VersionNumber: rv.Version.VersionNumber,
			StorageKey:    rv.Version.StorageKey,
			StorageURL:    rv.Version.StorageURL,
			ContentHash:   rv.Version.ContentHash,
			Summary:       rv.Version.Summary,
			Tags:          tags,
			CreatedAt:     rv.Version.CreatedAt,
		},
	}
}

func FromResumesWithVersion(items []repository.ResumeWithVersion) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, rv := range items {
		out = append(out, FromResumeWithVersion(rv))
	}
	return out
}
