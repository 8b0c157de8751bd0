package search

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"Python", []string{"python"}},
		{"python, Docker & CI/CD", []string{"python", "docker", "ci", "cd"}},
		{"go go GO", []string{"go"}},
		{"a b c www", []string{"www"}},
		{"engenheiro de produção", []string{"engenheiro", "de", "produção"}},
	}
	for _, c := range cases {
		if got := ExtractKeywords(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("ExtractKeywords(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractKeywords_PreservesFirstSeenOrder(t *testing.T) {
	got := ExtractKeywords("docker python docker kubernetes python")
	want := []string{"docker", "python", "kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
