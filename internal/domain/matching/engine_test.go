package matching

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Python,  Docker!  ", "python docker"},
		{"CI/CD & DevOps", "ci cd devops"},
		{"Experiência com Go", "experiência com go"},
		{"...", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractSkills_EmptyInputs(t *testing.T) {
	s := ExtractSkills("", nil)
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %v", s.Items())
	}
}

func TestExtractSkills_TagsAndText(t *testing.T) {
	s := ExtractSkills("Trabalhei com Docker e Kubernetes em produção", []string{"Python", "Docker"})
	for _, want := range []string{"python", "docker", "kubernetes"} {
		if !s.Has(want) {
			t.Fatalf("expected %q in %v", want, s.Items())
		}
	}
	// tags come first, normalized, and duplicates collapse
	items := s.Items()
	if items[0] != "python" || items[1] != "docker" {
		t.Fatalf("unexpected insertion order: %v", items)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 skills, got %d: %v", s.Len(), items)
	}
}

func TestScoreSkills_NoJobSkillsIsNeutral(t *testing.T) {
	resume := ExtractSkills("python docker", nil)
	score, matched, missing, extra := scoreSkills(resume, NewSkillSet())
	if score != 0.5 {
		t.Fatalf("expected neutral 0.5, got %v", score)
	}
	if len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", matched, missing)
	}
	if len(extra) != 2 {
		t.Fatalf("expected resume skills echoed as extra, got %v", extra)
	}
}

func TestScoreSkills_RecallAgainstJob(t *testing.T) {
	resume := ExtractSkills("", []string{"python", "docker", "linux"})
	job := ExtractSkills("", []string{"python", "docker", "kubernetes"})

	score, matched, missing, extra := scoreSkills(resume, job)
	if math.Abs(score-2.0/3.0) > 1e-9 {
		t.Fatalf("expected 2/3, got %v", score)
	}
	if !reflect.DeepEqual(matched, []string{"python", "docker"}) {
		t.Fatalf("unexpected matched: %v", matched)
	}
	if !reflect.DeepEqual(missing, []string{"kubernetes"}) {
		t.Fatalf("unexpected missing: %v", missing)
	}
	if !reflect.DeepEqual(extra, []string{"linux"}) {
		t.Fatalf("unexpected extra: %v", extra)
	}
}

func TestScoreExperience(t *testing.T) {
	cases := []struct {
		name         string
		resume, reqs string
		want         float64
	}{
		{"empty requirements", "5 anos de experiência", "", 0.5},
		{"meets requirement", "5 anos de experiência", "3+ anos", 1.0},
		// 2/4 ratio plus +0.1 for "experiência"
		{"partial ratio with bonus", "2 anos de experiência", "4 anos", 0.6},
		{"no numbers stays neutral", "desenvolvedor backend", "requisitos gerais", 0.5},
		// neutral 0.5 + two keyword bonuses
		{"keyword bonuses stack", "experiência e trabalho em equipe", "requisitos gerais", 0.7},
		{"clamped at one", "10 anos de experiência e trabalho", "2 anos", 1.0},
	}
	for _, c := range cases {
		if got := scoreExperience(c.resume, c.reqs); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("%s: scoreExperience = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScoreLevel(t *testing.T) {
	cases := []struct {
		name          string
		resume, level string
		want          float64
	}{
		{"empty level", "desenvolvedor sênior", "", 0.5},
		{"synonym hit", "desenvolvedor sênior com 8 anos", "senior", 1.0},
		{"pleno variant", "desenvolvedor pleno", "pleno", 1.0},
		{"supervisor override senior", "supervisor de equipe", "senior", 0.8},
		{"supervisor override pleno", "coordenador de projetos", "pleno", 0.8},
		{"no override for junior", "supervisor de equipe", "junior", 0.5},
		{"unknown level", "desenvolvedor", "staff", 0.5},
		{"no signal", "desenvolvedor backend", "senior", 0.5},
	}
	for _, c := range cases {
		if got := scoreLevel(c.resume, c.level); got != c.want {
			t.Fatalf("%s: scoreLevel = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestScoreEducation(t *testing.T) {
	cases := []struct {
		name         string
		resume, reqs string
		want         float64
	}{
		{"empty requirements", "bacharelado em computação", "", 0.5},
		{"no requirement detected", "bacharelado em computação", "3 anos de experiência", 0.5},
		{"meets requirement", "mestrado em segurança", "graduação exigida", 1.0},
		{"one tier below", "especialização em redes", "mestrado desejável", 0.7},
		{"two tiers below", "bacharelado em computação", "mestrado exigido", 0.3},
		{"nothing on resume side", "desenvolvedor", "graduação exigida", 0.3},
	}
	for _, c := range cases {
		if got := scoreEducation(c.resume, c.reqs); got != c.want {
			t.Fatalf("%s: scoreEducation = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAggregate_WeightInvariant(t *testing.T) {
	subs := []SubScores{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0.5, 0.5, 0.5, 0.5},
		{0.3, 0.9, 0.1, 0.7},
	}
	for _, s := range subs {
		want := 0.40*s.Skills + 0.30*s.Experience + 0.20*s.Level + 0.10*s.Education
		if got := Aggregate(s); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Aggregate(%+v) = %v, want %v", s, got, want)
		}
		if got := Aggregate(s); got < 0 || got > 1 {
			t.Fatalf("Aggregate(%+v) out of [0,1]: %v", s, got)
		}
	}
}

func TestCompute_FullScenario(t *testing.T) {
	in := Input{
		ResumeText:      "5 anos de experiência com Python e Docker",
		ResumeTags:      []string{"Python", "Docker"},
		JobText:         "Vaga para desenvolvedor",
		JobRequirements: "3+ anos, Python, Docker, Kubernetes",
		JobTags:         []string{"Python", "Docker", "Kubernetes"},
		JobLevel:        "pleno",
	}

	res := Compute(in)

	if math.Abs(res.SubScores.Skills-2.0/3.0) > 1e-9 {
		t.Fatalf("skills score = %v, want 2/3", res.SubScores.Skills)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"python", "docker"}) {
		t.Fatalf("matched = %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"kubernetes"}) {
		t.Fatalf("missing = %v", res.MissingSkills)
	}
	if res.SubScores.Experience != 1.0 {
		t.Fatalf("experience score = %v, want 1.0", res.SubScores.Experience)
	}
	if res.OverallScore < 0 || res.OverallScore > 1 {
		t.Fatalf("overall out of range: %v", res.OverallScore)
	}
}

func TestCompute_EmptyJobSideIsNeutralEverywhere(t *testing.T) {
	res := Compute(Input{
		ResumeText: "desenvolvedor backend",
		JobText:    "vaga sem detalhes",
	})

	sub := res.SubScores
	if sub.Skills != 0.5 || sub.Experience != 0.5 || sub.Level != 0.5 || sub.Education != 0.5 {
		t.Fatalf("expected all sub-scores 0.5, got %+v", sub)
	}
	if res.OverallScore != 0.5 {
		t.Fatalf("expected overall exactly 0.5, got %v", res.OverallScore)
	}
}

func TestCompute_TotalOverEmptyInputs(t *testing.T) {
	res := Compute(Input{})

	for name, v := range map[string]float64{
		"overall":    res.OverallScore,
		"skills":     res.SubScores.Skills,
		"experience": res.SubScores.Experience,
		"level":      res.SubScores.Level,
		"education":  res.SubScores.Education,
	} {
		if v < 0 || v > 1 {
			t.Fatalf("%s out of [0,1]: %v", name, v)
		}
	}
	if len(res.Strengths) == 0 || len(res.Weaknesses) == 0 || len(res.Recommendations) == 0 {
		t.Fatalf("expected fallback explanation entries, got %+v", res)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := Input{
		ResumeText:      "3 anos de experiência com Python, Linux e Git",
		ResumeTags:      []string{"Python", "Linux"},
		JobText:         "Analista de segurança",
		JobRequirements: "5 anos, SIEM, pentesting, ISO 27001",
		JobTags:         []string{"SIEM", "Nmap"},
		JobLevel:        "senior",
	}

	first := Compute(in)
	second := Compute(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs:\n%+v\n%+v", first, second)
	}
}

func TestRecommendations_TopThreeMissingOnly(t *testing.T) {
	missing := []string{"kubernetes", "aws", "terraform", "docker"}
	recs := buildRecommendations(missing, 0.3, 0.9, 0.9)

	if len(recs) != 1 {
		t.Fatalf("expected exactly one recommendation, got %v", recs)
	}
	for _, s := range missing[:3] {
		if !strings.Contains(recs[0], s) {
			t.Fatalf("expected %q in %q", s, recs[0])
		}
	}
	if strings.Contains(recs[0], "docker") {
		t.Fatalf("expected only the first three missing skills, got %q", recs[0])
	}
}

func TestExplain_Fallbacks(t *testing.T) {
	recs := buildRecommendations(nil, 0.9, 0.9, 0.9)
	if len(recs) != 1 || !strings.Contains(recs[0], "alinhado") {
		t.Fatalf("unexpected recommendation fallback: %v", recs)
	}

	strengths := identifyStrengths(nil, 0.2, 0.2)
	if len(strengths) != 1 || strengths[0] != "Perfil em desenvolvimento" {
		t.Fatalf("unexpected strengths fallback: %v", strengths)
	}

	weaknesses := identifyWeaknesses(nil, 0.9, 0.9)
	if len(weaknesses) != 1 || !strings.Contains(weaknesses[0], "Nenhuma fraqueza") {
		t.Fatalf("unexpected weaknesses fallback: %v", weaknesses)
	}
}

func TestExplain_StrengthRules(t *testing.T) {
	matched := []string{"python", "docker", "linux", "git"}
	strengths := identifyStrengths(matched, 0.8, 0.75)

	if len(strengths) != 3 {
		t.Fatalf("expected 3 strengths, got %v", strengths)
	}
	if !strings.Contains(strengths[0], "4 skills") {
		t.Fatalf("expected matched count in %q", strengths[0])
	}
	if !strings.Contains(strengths[2], "python, docker, linux") {
		t.Fatalf("expected top-3 matched in %q", strengths[2])
	}
}
