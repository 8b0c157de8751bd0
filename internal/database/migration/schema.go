package migration

// Ordered DDL steps. Append only; never edit an applied step, add a new one.
var steps = []Step{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 2,
		Name:    "create_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 3,
		Name:    "create_resume_versions",
		SQL: `CREATE TABLE IF NOT EXISTS resume_versions (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			version_number INT NOT NULL,
			storage_key TEXT NOT NULL,
			storage_url TEXT NOT NULL,
			content TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			summary TEXT,
			tags TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (resume_id, version_number)
		)`,
	},
	{
		Version: 4,
		Name:    "create_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			company TEXT,
			location TEXT,
			description TEXT NOT NULL,
			requirements TEXT,
			stack TEXT[],
			level TEXT,
			salary_range TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 5,
		Name:    "create_matches",
		SQL: `CREATE TABLE IF NOT EXISTS matches (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			overall_score DOUBLE PRECISION NOT NULL,
			skills_score DOUBLE PRECISION NOT NULL,
			experience_score DOUBLE PRECISION NOT NULL,
			level_score DOUBLE PRECISION NOT NULL,
			education_score DOUBLE PRECISION NOT NULL,
			matched_skills TEXT[],
			missing_skills TEXT[],
			extra_skills TEXT[],
			strengths TEXT[],
			weaknesses TEXT[],
			recommendations TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 6,
		Name:    "index_matches_pair",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_matches_resume_job ON matches (resume_id, job_id, created_at DESC)`,
	},
	{
		Version: 7,
		Name:    "create_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			data TEXT,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			read_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 8,
		Name:    "create_webhooks",
		SQL: `CREATE TABLE IF NOT EXISTS webhooks (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			events TEXT[] NOT NULL,
			secret TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_triggered TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
}
