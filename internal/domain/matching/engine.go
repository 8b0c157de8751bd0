package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Fixed aggregation weights. They always sum to 1.0, so the overall score
// stays in [0,1] whenever every sub-score does.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.30
	levelWeight      = 0.20
	educationWeight  = 0.10
)

// neutralScore is returned by every scorer when the inputs carry no usable
// signal. Missing information is never an error.
const neutralScore = 0.5

// Input carries everything a single match computation needs. It is
// constructed fresh per request and never mutated.
type Input struct {
	ResumeText      string
	ResumeTags      []string
	JobText         string
	JobRequirements string
	JobTags         []string
	JobLevel        string
}

type SubScores struct {
	Skills     float64
	Experience float64
	Level      float64
	Education  float64
}

// Result is the full outcome of one match computation. Matched, Missing and
// Extra preserve extraction order; the explanation slices are in rule order.
type Result struct {
	OverallScore float64
	SubScores    SubScores

	MatchedSkills []string
	MissingSkills []string
	ExtraSkills   []string

	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// Compute runs the whole pipeline: skill extraction for both sides, the four
// sub-scores, weighted aggregation and explanation generation. It is pure and
// total: any combination of empty inputs produces a valid Result, never an
// error. Safe for concurrent use.
func Compute(in Input) Result {
	resumeSkills := ExtractSkills(in.ResumeText, in.ResumeTags)
	jobSkills := ExtractSkills(in.JobText+" "+in.JobRequirements, in.JobTags)

	skillsScore, matched, missing, extra := scoreSkills(resumeSkills, jobSkills)
	experienceScore := scoreExperience(in.ResumeText, in.JobRequirements)
	levelScore := scoreLevel(in.ResumeText, in.JobLevel)
	educationScore := scoreEducation(in.ResumeText, in.JobRequirements)

	sub := SubScores{
		Skills:     skillsScore,
		Experience: experienceScore,
		Level:      levelScore,
		Education:  educationScore,
	}

	return Result{
		OverallScore:    Aggregate(sub),
		SubScores:       sub,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		Strengths:       identifyStrengths(matched, skillsScore, experienceScore),
		Weaknesses:      identifyWeaknesses(missing, skillsScore, experienceScore),
		Recommendations: buildRecommendations(missing, skillsScore, experienceScore, levelScore),
	}
}

// Aggregate folds the four sub-scores into the overall score with the fixed
// weights. The sum runs in percent space (the weight constants fold to whole
// numbers at compile time) so that an all-neutral input aggregates to exactly
// 0.5 instead of accumulating rounding error.
func Aggregate(sub SubScores) float64 {
	return (sub.Skills*(skillsWeight*100) +
		sub.Experience*(experienceWeight*100) +
		sub.Level*(levelWeight*100) +
		sub.Education*(educationWeight*100)) / 100
}

// scoreSkills is a recall-style metric against the job-stated requirements:
// the fraction of job skills the resume covers. Resume skills the job never
// asked for do not penalize; they only surface as extra.
func scoreSkills(resumeSkills, jobSkills *SkillSet) (float64, []string, []string, []string) {
	if jobSkills.Len() == 0 {
		return neutralScore, []string{}, []string{}, resumeSkills.Items()
	}

	matched := make([]string, 0, resumeSkills.Len())
	extra := make([]string, 0)
	for _, s := range resumeSkills.Items() {
		if jobSkills.Has(s) {
			matched = append(matched, s)
		} else {
			extra = append(extra, s)
		}
	}

	missing := make([]string, 0)
	for _, s := range jobSkills.Items() {
		if !resumeSkills.Has(s) {
			missing = append(missing, s)
		}
	}

	score := float64(len(matched)) / float64(jobSkills.Len())
	if score > 1.0 {
		score = 1.0
	}
	return score, matched, missing, extra
}

// The job side tolerates a trailing "+" ("3+ anos"); the resume side does
// not. First match wins in both cases, which is deliberately naive: the
// extraction lives behind this scorer so it can be replaced without touching
// the scorer's contract.
var (
	resumeYearsRe = regexp.MustCompile(`(\d+)\s*(?:anos?|years?)`)
	jobYearsRe    = regexp.MustCompile(`(\d+)\s*(?:\+|anos?|years?)`)
)

func scoreExperience(resumeText, jobRequirements string) float64 {
	if jobRequirements == "" {
		return neutralScore
	}

	resumeLower := strings.ToLower(resumeText)
	requirementsLower := strings.ToLower(jobRequirements)

	score := neutralScore
	resumeYears, resumeOk := firstYears(resumeYearsRe, resumeLower)
	jobYears, jobOk := firstYears(jobYearsRe, requirementsLower)
	if resumeOk && jobOk {
		if resumeYears >= jobYears {
			score = 1.0
		} else {
			score = float64(resumeYears) / float64(jobYears)
		}
	}

	for _, keyword := range experienceKeywords {
		if strings.Contains(resumeLower, keyword) {
			score += 0.1
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func firstYears(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// scoreLevel checks whether the resume claims the seniority the job asks for.
// Level claims in free text are unreliable, so a miss is neutral rather than
// a penalty.
func scoreLevel(resumeText, jobLevel string) float64 {
	if jobLevel == "" {
		return neutralScore
	}

	resumeLower := strings.ToLower(resumeText)
	jobLevelLower := strings.ToLower(jobLevel)

	if synonyms, ok := levelSynonyms[jobLevelLower]; ok {
		for _, token := range synonyms {
			if strings.Contains(resumeLower, token) {
				return 1.0
			}
		}
	}

	if jobLevelLower == "senior" || jobLevelLower == "pleno" {
		for _, token := range supervisoryTokens {
			if strings.Contains(resumeLower, token) {
				return 0.8
			}
		}
	}

	return neutralScore
}

// scoreEducation compares the highest education tier each side mentions.
// Meeting or exceeding the requirement is a full score, one tier below is
// partial credit, anything lower scores 0.3.
func scoreEducation(resumeText, jobRequirements string) float64 {
	if jobRequirements == "" {
		return neutralScore
	}

	resumeRank := highestEducationRank(strings.ToLower(resumeText))
	jobRank := highestEducationRank(strings.ToLower(jobRequirements))

	if jobRank == 0 {
		return neutralScore
	}

	switch {
	case resumeRank >= jobRank:
		return 1.0
	case resumeRank == jobRank-1:
		return 0.7
	default:
		return 0.3
	}
}

func highestEducationRank(textLower string) int {
	rank := 0
	for term, r := range educationRanks {
		if r > rank && strings.Contains(textLower, term) {
			rank = r
		}
	}
	return rank
}
