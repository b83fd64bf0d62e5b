// Package blurb writes short flavor summaries for uploaded stories using
// Gemini. Blurbs are cosmetic and never touch game state.
package blurb

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/story_blurb.txt
var storyBlurbPrompt string

var promptTmpl = template.Must(template.New("story_blurb").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(storyBlurbPrompt))

// Request describes the story being uploaded.
type Request struct {
	Tags    []string
	Uploads int
}

type Writer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewWriter(ctx context.Context, apiKey string) (*Writer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetMaxOutputTokens(80)
	return &Writer{
		client: client,
		model:  model,
	}, nil
}

func (w *Writer) Close() {
	w.client.Close()
}

// Write asks the model for a one-line summary of the story.
func (w *Writer) Write(ctx context.Context, req Request) (string, error) {
	prompt, err := renderPrompt(req)
	if err != nil {
		return "", err
	}

	resp, err := w.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return clean(string(text)), nil
}

func renderPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// clean strips code fences, surrounding quotes and extra lines from a model
// reply.
func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(strings.TrimSpace(s), `"`)
}
