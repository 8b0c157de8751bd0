package repository

import (
	"context"
	"time"

	"resume-match/internal/database"

	"github.com/google/uuid"
)

// Match is one persisted analysis outcome. The table is an append-only log:
// re-analyzing the same pair inserts a new row rather than updating an old
// one, so score history over resume versions is preserved.
type Match struct {
	ID       uuid.UUID
	ResumeID uuid.UUID
	JobID    uuid.UUID

	OverallScore    float64
	SkillsScore     float64
	ExperienceScore float64
	LevelScore      float64
	EducationScore  float64

	MatchedSkills []string
	MissingSkills []string
	ExtraSkills   []string

	Strengths       []string
	Weaknesses      []string
	Recommendations []string

	CreatedAt time.Time
}

type MatchRepository interface {
	Insert(ctx context.Context, m Match) error
	ListByPair(ctx context.Context, resumeID, jobID uuid.UUID, limit int) ([]Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Insert(ctx context.Context, m Match) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (
			id, resume_id, job_id,
			overall_score, skills_score, experience_score, level_score, education_score,
			matched_skills, missing_skills, extra_skills,
			strengths, weaknesses, recommendations
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		m.ID, m.ResumeID, m.JobID,
		m.OverallScore, m.SkillsScore, m.ExperienceScore, m.LevelScore, m.EducationScore,
		m.MatchedSkills, m.MissingSkills, m.ExtraSkills,
		m.Strengths, m.Weaknesses, m.Recommendations,
	)
	return err
}

func (r *PostgresMatchRepository) ListByPair(ctx context.Context, resumeID, jobID uuid.UUID, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, resume_id, job_id,
			overall_score, skills_score, experience_score, level_score, education_score,
			COALESCE(matched_skills, '{}'), COALESCE(missing_skills, '{}'), COALESCE(extra_skills, '{}'),
			COALESCE(strengths, '{}'), COALESCE(weaknesses, '{}'), COALESCE(recommendations, '{}'),
			created_at
		 FROM matches
		 WHERE resume_id = $1 AND job_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		resumeID, jobID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Match, 0)
	for rows.Next() {
		var m Match
		if err := rows.Scan(
			&m.ID, &m.ResumeID, &m.JobID,
			&m.OverallScore, &m.SkillsScore, &m.ExperienceScore, &m.LevelScore, &m.EducationScore,
			&m.MatchedSkills, &m.MissingSkills, &m.ExtraSkills,
			&m.Strengths, &m.Weaknesses, &m.Recommendations,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
