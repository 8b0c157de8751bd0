package seeder

import (
	"context"
	"fmt"

	"resume-match/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	demoEmployerID  = uuid.MustParse("6f1f6f2a-0b84-4c5a-9e34-1f6d1a6a0001")
	demoCandidateID = uuid.MustParse("6f1f6f2a-0b84-4c5a-9e34-1f6d1a6a0002")
)

type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		ID    uuid.UUID
		Email string
	}{
		{ID: demoEmployerID, Email: "employer@example.com"},
		{ID: demoCandidateID, Email: "candidate@example.com"},
	}

	for _, u := range users {
		if _, err := db.Exec(ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
			 ON CONFLICT (email) DO NOTHING`,
			u.ID, u.Email, string(hash),
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
	}
	return nil
}

type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	jobs := []struct {
		ID           uuid.UUID
		Title        string
		Company      string
		Location     string
		Description  string
		Requirements string
		Stack        []string
		Level        string
	}{
		{
			ID:           uuid.MustParse("7a2a7b3c-1c95-4d6b-8f45-2a7e2b7b0001"),
			Title:        "Desenvolvedor Backend Pleno",
			Company:      "Acme Tecnologia",
			Location:     "São Paulo, SP",
			Description:  "Desenvolvimento de APIs e serviços de alto volume.",
			Requirements: "3 anos de experiência com python, docker e postgresql",
			Stack:        []string{"python", "docker", "postgresql"},
			Level:        "pleno",
		},
		{
			ID:           uuid.MustParse("7a2a7b3c-1c95-4d6b-8f45-2a7e2b7b0002"),
			Title:        "Analista de Segurança Senior",
			Company:      "SecOps Brasil",
			Location:     "Remoto",
			Description:  "Atuação em blue team com monitoramento e resposta a incidentes.",
			Requirements: "5 anos de experiência com siem, splunk e iso 27001",
			Stack:        []string{"siem", "splunk", "iso 27001"},
			Level:        "senior",
		},
	}

	for _, j := range jobs {
		if _, err := db.Exec(ctx,
			`INSERT INTO jobs (id, user_id, title, company, location, description, requirements, stack, level, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, demoEmployerID, j.Title, j.Company, j.Location, j.Description, j.Requirements, j.Stack, j.Level,
		); err != nil {
			return fmt.Errorf("insert job %s: %w", j.Title, err)
		}
	}
	return nil
}
