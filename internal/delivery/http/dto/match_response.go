package dto

import (
	"time"

	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"
	"resume-match/internal/usecase"

	"github.com/google/uuid"
)

type SubScoresResponse struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Level      float64 `json:"level"`
	Education  float64 `json:"education"`
}

type MatchResultResponse struct {
	OverallScore    float64           `json:"overall_score"`
	SubScores       SubScoresResponse `json:"sub_scores"`
	MatchedSkills   []string          `json:"matched_skills"`
	MissingSkills   []string          `json:"missing_skills"`
	ExtraSkills     []string          `json:"extra_skills"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
}

func FromMatchResult(res matching.Result) MatchResultResponse {
	return MatchResultResponse{
		OverallScore: res.OverallScore,
		SubScores: SubScoresResponse{
			Skills:     res.SubScores.Skills,
			Experience: res.SubScores.Experience,
			Level:      res.SubScores.Level,
			Education:  res.SubScores.Education,
		},
		MatchedSkills:   emptyIfNil(res.MatchedSkills),
		MissingSkills:   emptyIfNil(res.MissingSkills),
		ExtraSkills:     emptyIfNil(res.ExtraSkills),
		Strengths:       emptyIfNil(res.Strengths),
		Weaknesses:      emptyIfNil(res.Weaknesses),
		Recommendations: emptyIfNil(res.Recommendations),
	}
}

type MatchHistoryResponse struct {
	ID           uuid.UUID         `json:"id"`
	ResumeID     uuid.UUID         `json:"resume_id"`
	JobID        uuid.UUID         `json:"job_id"`
	OverallScore float64           `json:"overall_score"`
	SubScores    SubScoresResponse `json:"sub_scores"`
	CreatedAt    time.Time         `json:"created_at"`
}

func FromMatchHistory(items []repository.Match) []MatchHistoryResponse {
	out := make([]MatchHistoryResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MatchHistoryResponse{
			ID:           m.ID,
			ResumeID:     m.ResumeID,
			JobID:        m.JobID,
			OverallScore: m.OverallScore,
			SubScores: SubScoresResponse{
				Skills:     m.SkillsScore,
				Experience: m.ExperienceScore,
				Level:      m.LevelScore,
				Education:  m.EducationScore,
			},
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

type JobRecommendationResponse struct {
	Job    JobResponse         `json:"job"`
	Result MatchResultResponse `json:"result"`
}

func FromJobRecommendations(items []usecase.JobRecommendation) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, JobRecommendationResponse{
			Job:    FromJob(it.Job),
			Result: FromMatchResult(it.Result),
		})
	}
	return out
}

type ResumeRecommendationResponse struct {
	Resume ResumeResponse      `json:"resume"`
	Result MatchResultResponse `json:"result"`
}

func FromResumeRecommendations(items []usecase.ResumeRecommendation) []ResumeRecommendationResponse {
	out := make([]ResumeRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ResumeRecommendationResponse{
			Resume: FromResumeWithVersion(it.Resume),
			Result: FromMatchResult(it.Result),
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
