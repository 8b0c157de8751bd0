package repository

import (
	"context"
	"fmt"
	"strings"

	"resume-match/internal/database"
)

type ResumeSearchFilter struct {
	Keywords []string
	Skills   []string
	Limit    int
	Offset   int
}

type JobSearchFilter struct {
	Keywords []string
	Stack    []string
	Level    string
	Location string
	Limit    int
	Offset   int
}

type SearchRepository interface {
	SearchPublicResumes(ctx context.Context, f ResumeSearchFilter) ([]ResumeWithVersion, int, error)
	SearchActiveJobs(ctx context.Context, f JobSearchFilter) ([]Job, int, error)
}

type PostgresSearchRepository struct {
	db database.DB
}

func NewPostgresSearchRepository(db database.DB) *PostgresSearchRepository {
	return &PostgresSearchRepository{db: db}
}

func (r *PostgresSearchRepository) SearchPublicResumes(ctx context.Context, f ResumeSearchFilter) ([]ResumeWithVersion, int, error) {
	limit, offset := clampPage(f.Limit, f.Offset)

	where := []string{"r.is_public = TRUE"}
	args := []any{}

	if len(f.Keywords) > 0 {
		ors := make([]string, 0, len(f.Keywords))
		for _, kw := range f.Keywords {
			args = append(args, "%"+kw+"%")
			n := len(args)
			ors = append(ors, fmt.Sprintf(
				"(r.title ILIKE $%d OR v.content ILIKE $%d OR v.summary ILIKE $%d OR array_to_string(v.tags, ' ') ILIKE $%d)",
				n, n, n, n,
			))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	for _, skill := range f.Skills {
		args = append(args, "%"+skill+"%")
		where = append(where, fmt.Sprintf("array_to_string(v.tags, ' ') ILIKE $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM resumes r`+latestVersionJoin+` WHERE `+cond,
		args...,
	)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+resumeWithVersionColumns+` FROM resumes r`+latestVersionJoin+
			` WHERE `+cond+
			fmt.Sprintf(` ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectResumesWithVersion(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresSearchRepository) SearchActiveJobs(ctx context.Context, f JobSearchFilter) ([]Job, int, error) {
	limit, offset := clampPage(f.Limit, f.Offset)

	where := []string{"is_active = TRUE"}
	args := []any{}

	if len(f.Keywords) > 0 {
		ors := make([]string, 0, len(f.Keywords))
		for _, kw := range f.Keywords {
			args = append(args, "%"+kw+"%")
			n := len(args)
			ors = append(ors, fmt.Sprintf(
				"(title ILIKE $%d OR description ILIKE $%d OR requirements ILIKE $%d OR company ILIKE $%d)",
				n, n, n, n,
			))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	for _, tech := range f.Stack {
		args = append(args, "%"+tech+"%")
		where = append(where, fmt.Sprintf("array_to_string(stack, ' ') ILIKE $%d", len(args)))
	}
	if f.Level != "" {
		args = append(args, f.Level)
		where = append(where, fmt.Sprintf("level = $%d", len(args)))
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
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

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
