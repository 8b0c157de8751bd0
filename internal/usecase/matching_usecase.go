package usecase

import (
	"context"
	"errors"
	"log"

	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"

	"github.com/google/uuid"
)

// MatchNotifier is told about every persisted analysis so the owner can be
// pinged over websocket/webhooks. Failures there never fail the analysis.
type MatchNotifier interface {
	NotifyMatchAnalyzed(ctx context.Context, ownerID uuid.UUID, m repository.Match)
}

type MatchingUsecase interface {
	Analyze(ctx context.Context, requesterID, resumeID, jobID uuid.UUID) (matching.Result, error)
	History(ctx context.Context, requesterID, resumeID, jobID uuid.UUID, limit int) ([]repository.Match, error)
}

type Matching struct {
	resumes  repository.ResumeRepository
	jobs     repository.JobRepository
	matches  repository.MatchRepository
	notifier MatchNotifier
}

func NewMatchingUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	notifier MatchNotifier,
) *Matching {
	return &Matching{resumes: resumes, jobs: jobs, matches: matches, notifier: notifier}
}

func (u *Matching) Analyze(ctx context.Context, requesterID, resumeID, jobID uuid.UUID) (matching.Result, error) {
	if requesterID == uuid.Nil {
		return matching.Result{}, ErrUnauthorized
	}

	rv, err := u.resumes.GetWithLatestVersion(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return matching.Result{}, ErrResumeNotFound
		}
		return matching.Result{}, ErrInternal
	}
	if !rv.Resume.IsPublic && rv.Resume.UserID != requesterID {
		return matching.Result{}, ErrForbidden
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.Result{}, ErrJobNotFound
		}
		return matching.Result{}, ErrInternal
	}

	res := matching.Compute(matchInput(rv, job))

	m := toMatchRow(resumeID, jobID, res)
	if err := u.matches.Insert(ctx, m); err != nil {
		return matching.Result{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyMatchAnalyzed(ctx, rv.Resume.UserID, m)
	}

	return res, nil
}

func (u *Matching) History(ctx context.Context, requesterID, resumeID, jobID uuid.UUID, limit int) ([]repository.Match, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	rv, err := u.resumes.GetWithLatestVersion(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}
	if rv.Resume.UserID != requesterID {
		return nil, ErrForbidden
	}

	out, err := u.matches.ListByPair(ctx, resumeID, jobID, limit)
	if err != nil {
		log.Printf("[matching] history query failed resume=%s job=%s: %v", resumeID, jobID, err)
		return nil, ErrInternal
	}
	return out, nil
}

func matchInput(rv repository.ResumeWithVersion, job repository.Job) matching.Input {
	return matching.Input{
		ResumeText:      rv.Version.Content + " " + rv.Version.Summary,
		ResumeTags:      rv.Version.Tags,
		JobText:         job.Title + " " + job.Description,
		JobRequirements: job.Requirements,
		JobTags:         job.Stack,
		JobLevel:        job.Level,
	}
}

func toMatchRow(resumeID, jobID uuid.UUID, res matching.Result) repository.Match {
	return repository.Match{
		ID:       uuid.New(),
		ResumeID: resumeID,
		JobID:    jobID,

		OverallScore:    res.OverallScore,
		SkillsScore:     res.SubScores.Skills,
		ExperienceScore: res.SubScores.Experience,
		LevelScore:      res.SubScores.Level,
		EducationScore:  res.SubScores.Education,

		MatchedSkills: res.MatchedSkills,
		MissingSkills: res.MissingSkills,
		ExtraSkills:   res.ExtraSkills,

		Strengths:       res.Strengths,
		Weaknesses:      res.Weaknesses,
		Recommendations: res.Recommendations,
	}
}
