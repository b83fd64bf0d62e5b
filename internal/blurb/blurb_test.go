package blurb

import (
	"strings"
	"testing"
)

func TestRenderPrompt(t *testing.T) {
	prompt, err := renderPrompt(Request{Tags: []string{"Slow Burn", "Coffee Shop AU"}, Uploads: 12})
	if err != nil {
		t.Fatalf("renderPrompt: %v", err)
	}
	if !strings.Contains(prompt, "tagged: Slow Burn, Coffee Shop AU.") {
		t.Errorf("Expected tags in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "story number 12") {
		t.Errorf("Expected upload count in prompt, got:\n%s", prompt)
	}

	prompt, err = renderPrompt(Request{})
	if err != nil {
		t.Fatalf("renderPrompt: %v", err)
	}
	if !strings.Contains(prompt, "no tags yet") {
		t.Errorf("Expected untagged wording, got:\n%s", prompt)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A barista falls for a ghost.", "A barista falls for a ghost."},
		{"  \"Quoted summary.\"  ", "Quoted summary."},
		{"```\nFenced summary.\n```", "Fenced summary."},
		{"First line.\nSecond line.", "First line."},
	}
	for _, tt := range tests {
		if got := clean(tt.in); got != tt.want {
			t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
