package dto

import "resume-match/internal/usecase"

type ResumeSearchHitResponse struct {
	Resume     ResumeResponse `json:"resume"`
	Relevance  float64        `json:"relevance"`
	Highlights []string       `json:"highlights"`
}

func FromResumeSearchHits(items []usecase.ResumeSearchHit) []ResumeSearchHitResponse {
	out := make([]ResumeSearchHitResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ResumeSearchHitResponse{
			Resume:     FromResumeWithVersion(it.Resume),
			Relevance:  it.Relevance,
			Highlights: emptyIfNil(it.Highlights),
		})
	}
	return out
}

type JobSearchHitResponse struct {
	Job        JobResponse `json:"job"`
	Relevance  float64     `json:"relevance"`
	Highlights []string    `json:"highlights"`
}

func FromJobSearchHits(items []usecase.JobSearchHit) []JobSearchHitResponse {
	out := make([]JobSearchHitResponse, 0, len(items))
	for _, it := range items {
		out = append(out, JobSearchHitResponse{
			Job:        FromJob(it.Job),
			Relevance:  it.Relevance,
			Highlights: emptyIfNil(it.Highlights),
		})
	}
	return out
}
