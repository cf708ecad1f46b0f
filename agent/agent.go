// Package agent produces an AI commentary on a finished analysis
// report. It is an optional convenience on top of the pipeline; the
// analysis itself never depends on it.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for the commentary.
const DefaultModel = "gemini-2.0-flash"

const systemPrompt = `You are a careful investment analyst. You receive a markdown table
comparing mutual funds against a market index over a trailing window:
correlation, directional agreement, up/down capture, behavior and
tolerance labels. Comment on what stands out, fund by fund, in plain
language. Do not invent numbers, do not give buy or sell advice, and
say so when the window is too short to conclude anything.`

// Analyst is a single-purpose chat that reviews analysis summaries.
type Analyst struct {
	ModelName string
	chat      *genai.Chat
}

// NewAnalyst returns an Analyst on the default model.
func NewAnalyst() *Analyst {
	return &Analyst{ModelName: DefaultModel}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Review sends the rendered summary and returns the analyst's
// commentary.
func (a *Analyst) Review(ctx context.Context, summary string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("analyst session not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: summary})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
