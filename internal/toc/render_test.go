package toc

import (
	"slices"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{"level two", Entry{Heading: Heading{Level: 2, Title: "Intro"}, Anchor: "intro"}, "- [Intro](#intro)"},
		{"level three", Entry{Heading: Heading{Level: 3, Title: "Setup"}, Anchor: "setup"}, "  - [Setup](#setup)"},
		{"level four", Entry{Heading: Heading{Level: 4, Title: "Deep"}, Anchor: "deep-1"}, "    - [Deep](#deep-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render([]Entry{tt.entry})
			if len(result) != 1 || result[0] != tt.expected {
				t.Errorf("Render() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	lines := []string{
		"# Project",
		"<!-- TOC START -->",
		"<!-- TOC END -->",
		"## Intro",
		"```",
		"## Fake",
		"```",
		"### Intro",
		"## Table of Contents",
	}

	want := []string{
		"- [Intro](#intro)",
		"  - [Intro](#intro-1)",
	}
	result := Generate(lines)
	if !slices.Equal(result, want) {
		t.Errorf("Generate() = %q, want %q", result, want)
	}
}
