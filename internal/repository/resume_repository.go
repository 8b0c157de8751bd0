package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"resume-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type Resume struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	IsPublic  bool
	CreatedAt time.Time
}

type ResumeVersion struct {
	ID            uuid.UUID
	ResumeID      uuid.UUID
	VersionNumber int
	StorageKey    string
	StorageURL    string
	Content       string
	ContentHash   string
	Summary       string
	Tags          []string
	CreatedAt     time.Time
}

// ResumeWithVersion pairs a resume with its latest version, which is the only
// version the matcher and the search layer ever look at.
type ResumeWithVersion struct {
	Resume  Resume
	Version ResumeVersion
}

type ResumeRepository interface {
	CreateWithVersion(ctx context.Context, res Resume, v ResumeVersion) error
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	GetWithLatestVersion(ctx context.Context, id uuid.UUID) (ResumeWithVersion, error)
	LatestVersionNumber(ctx context.Context, resumeID uuid.UUID) (int, error)
	AddVersion(ctx context.Context, v ResumeVersion) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ResumeWithVersion, error)
	ListPublic(ctx context.Context, limit int) ([]ResumeWithVersion, error)
	SetVisibility(ctx context.Context, id, userID uuid.UUID, isPublic bool) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) CreateWithVersion(ctx context.Context, res Resume, v ResumeVersion) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO resumes (id, user_id, title, is_public) VALUES ($1, $2, $3, $4)`,
		res.ID, res.UserID, res.Title, res.IsPublic,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO resume_versions (id, resume_id, version_number, storage_key, storage_url, content, content_hash, summary, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.ResumeID, v.VersionNumber, v.StorageKey, v.StorageURL, v.Content, v.ContentHash, v.Summary, v.Tags,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, is_public, created_at FROM resumes WHERE id = $1`,
		id,
	)
	var res Resume
	if err := row.Scan(&res.ID, &res.UserID, &res.Title, &res.IsPublic, &res.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Resume{}, ErrResumeNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

const resumeWithVersionColumns = `
	r.id, r.user_id, r.title, r.is_public, r.created_at,
	v.id, v.resume_id, v.version_number, v.storage_key, v.storage_url,
	v.content, v.content_hash, COALESCE(v.summary, ''), COALESCE(v.tags, '{}'), v.created_at`

const latestVersionJoin = `
	JOIN LATERAL (
		SELECT * FROM resume_versions rv
		WHERE rv.resume_id = r.id
		ORDER BY rv.version_number DESC
		LIMIT 1
	) v ON TRUE`

func (r *PostgresResumeRepository) GetWithLatestVersion(ctx context.Context, id uuid.UUID) (ResumeWithVersion, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resumeWithVersionColumns+` FROM resumes r`+latestVersionJoin+` WHERE r.id = $1`,
		id,
	)
	rv, err := scanResumeWithVersion(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ResumeWithVersion{}, ErrResumeNotFound
		}
		return ResumeWithVersion{}, err
	}
	return rv, nil
}

func (r *PostgresResumeRepository) LatestVersionNumber(ctx context.Context, resumeID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(version_number), 0) FROM resume_versions WHERE resume_id = $1`,
		resumeID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresResumeRepository) AddVersion(ctx context.Context, v ResumeVersion) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_versions (id, resume_id, version_number, storage_key, storage_url, content, content_hash, summary, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.ResumeID, v.VersionNumber, v.StorageKey, v.StorageURL, v.Content, v.ContentHash, v.Summary, v.Tags,
	)
	return err
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ResumeWithVersion, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resumeWithVersionColumns+` FROM resumes r`+latestVersionJoin+`
		 WHERE r.user_id = $1
		 ORDER BY r.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumesWithVersion(rows)
}

func (r *PostgresResumeRepository) ListPublic(ctx context.Context, limit int) ([]ResumeWithVersion, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resumeWithVersionColumns+` FROM resumes r`+latestVersionJoin+`
		 WHERE r.is_public = TRUE
		 ORDER BY r.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumesWithVersion(rows)
}

func (r *PostgresResumeRepository) SetVisibility(ctx context.Context, id, userID uuid.UUID, isPublic bool) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE resumes SET is_public = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, isPublic,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func scanResumeWithVersion(row database.Row) (ResumeWithVersion, error) {
	var rv ResumeWithVersion
	err := row.Scan(
		&rv.Resume.ID, &rv.Resume.UserID, &rv.Resume.Title, &rv.Resume.IsPublic, &rv.Resume.CreatedAt,
		&rv.Version.ID, &rv.Version.ResumeID, &rv.Version.VersionNumber, &rv.Version.StorageKey,
		&rv.Version.StorageURL, &rv.Version.Content, &rv.Version.ContentHash, &rv.Version.Summary,
		&rv.Version.Tags, &rv.Version.CreatedAt,
	)
	return rv, err
}

func collectResumesWithVersion(rows database.Rows) ([]ResumeWithVersion, error) {
	out := make([]ResumeWithVersion, 0)
	for rows.Next() {
		rv, err := scanResumeWithVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
