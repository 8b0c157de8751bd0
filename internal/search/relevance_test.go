package search

import (
	"strings"
	"testing"
)

func TestRelevance(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		keywords []string
		want     float64
	}{
		{"empty text", "", []string{"go"}, 0},
		{"no keywords", "some text", nil, 0},
		{"single hit", "experienced python developer", []string{"python"}, 0.6},
		{"case insensitive", "Python e DOCKER", []string{"python", "docker"}, 1.0},
		{"capped at one", strings.Repeat("kubernetes ", 10), []string{"kubernetes"}, 1.0},
		{"miss", "frontend only", []string{"kubernetes"}, 0},
	}
	for _, c := range cases {
		if got := Relevance(c.text, c.keywords); got != c.want {
			t.Fatalf("%s: Relevance = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRelevance_LongerKeywordWeighsMore(t *testing.T) {
	short := Relevance("go backend", []string{"go"})
	long := Relevance("kubernetes backend", []string{"kubernetes"})
	if long <= short {
		t.Fatalf("expected longer keyword to score higher: %v <= %v", long, short)
	}
}

func TestHighlights_WrapsHitAndKeepsCase(t *testing.T) {
	got := Highlights("Trabalhei com Python em produção", []string{"python"})
	if len(got) != 1 {
		t.Fatalf("expected 1 highlight, got %d: %v", len(got), got)
	}
	if got[0] != "Trabalhei com **Python** em produção" {
		t.Fatalf("unexpected highlight: %q", got[0])
	}
}

func TestHighlights_LimitsToThree(t *testing.T) {
	text := "go python docker kubernetes redis"
	got := Highlights(text, []string{"go", "python", "docker", "kubernetes", "redis"})
	if len(got) != maxHighlights {
		t.Fatalf("expected %d highlights, got %d", maxHighlights, len(got))
	}
}

func TestHighlights_WindowAroundHit(t *testing.T) {
	pad := strings.Repeat("x", 200)
	text := pad + " docker " + pad
	got := Highlights(text, []string{"docker"})
	if len(got) != 1 {
		t.Fatalf("expected 1 highlight, got %d", len(got))
	}
	if !strings.Contains(got[0], "**docker**") {
		t.Fatalf("hit not wrapped: %q", got[0])
	}
	if len(got[0]) > 2*highlightWindow+len("docker")+len("****")+2 {
		t.Fatalf("snippet longer than window: %d bytes", len(got[0]))
	}
}

func TestHighlights_UTF8SafeBoundaries(t *testing.T) {
	pad := strings.Repeat("ç", 60)
	text := pad + "docker" + pad
	for _, h := range Highlights(text, []string{"docker"}) {
		for _, r := range h {
			if r == '�' {
				t.Fatalf("snippet split a rune: %q", h)
			}
		}
	}
}
