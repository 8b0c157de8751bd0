package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements string
	Stack        []string
	Level        string
	SalaryRange  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type JobFilter struct {
	Stack  []string
	Level  string
	Limit  int
	Offset int
}

type JobRepository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ListActive(ctx context.Context, f JobFilter) ([]Job, int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, user_id, title, COALESCE(company, ''), COALESCE(location, ''),
	description, COALESCE(requirements, ''), COALESCE(stack, '{}'), COALESCE(level, ''),
	COALESCE(salary_range, ''), is_active, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, user_id, title, company, location, description, requirements, stack, level, salary_range, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.UserID, j.Title, j.Company, j.Location, j.Description, j.Requirements,
		j.Stack, j.Level, j.SalaryRange, j.IsActive,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			title = $3, company = $4, location = $5, description = $6, requirements = $7,
			stack = $8, level = $9, salary_range = $10, is_active = $11, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		j.ID, j.UserID, j.Title, j.Company, j.Location, j.Description, j.Requirements,
		j.Stack, j.Level, j.SalaryRange, j.IsActive,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, f JobFilter) ([]Job, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"is_active = TRUE"}
	args := []any{}
	if len(f.Stack) > 0 {
		args = append(args, f.Stack)
		where = append(where, fmt.Sprintf("stack @> $%d", len(args)))
	}
	if f.Level != "" {
		args = append(args, f.Level)
		where = append(where, fmt.Sprintf("level = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE `+cond, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE `+cond+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func scanJob(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(
		&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.Requirements, &j.Stack, &j.Level, &j.SalaryRange, &j.IsActive,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}
