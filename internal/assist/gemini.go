package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// DefaultGeminiBaseURL is the public Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiConfig configures a GeminiGenerator.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient defaults to a client with a 60s timeout.
	HTTPClient *http.Client
}

// GeminiGenerator writes stories with the Gemini generateContent REST call.
type GeminiGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGeminiGenerator constructs a GeminiGenerator. APIKey and Model are required.
func NewGeminiGenerator(cfg GeminiConfig, log *slog.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" || cfg.Model == "" {
		return nil, fmt.Errorf("assist.NewGeminiGenerator: api key and model are required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	return &GeminiGenerator{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
		httpClient: hc,
		log:        log,
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateStory sends the storyteller prompt and returns the concatenated
// text of the first candidate. Failures are logged before being returned.
func (g *GeminiGenerator) GenerateStory(ctx context.Context, placeName string, points []string) (string, error) {
	story, err := g.generate(ctx, placeName, points)
	if err != nil {
		g.log.WarnContext(ctx, "story generation failed", "model", g.model, "error", err)
	}
	return story, err
}

func (g *GeminiGenerator) generate(ctx context.Context, placeName string, points []string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: StoryPrompt(placeName, points)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: %v", domain.ErrExternal, err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: %v", domain.ErrExternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: %v", domain.ErrExternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: read body: %v", domain.ErrExternal, err)
	}
	g.log.DebugContext(ctx, "gemini call", "model", g.model, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: status %d: %s", domain.ErrExternal, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: decode: %v", domain.ErrExternal, err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: no candidates", domain.ErrExternal)
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	story := strings.TrimSpace(sb.String())
	if story == "" {
		return "", fmt.Errorf("assist.GeminiGenerator.GenerateStory: %w: empty story", domain.ErrExternal)
	}
	return story, nil
}

// StoryPrompt renders the storyteller instruction for a place and its key points.
func StoryPrompt(placeName string, points []string) string {
	var sb strings.Builder
	sb.WriteString("You are a historical storyteller for a cultural heritage project called \"గడులు & గృహాలు\".\n")
	fmt.Fprintf(&sb, "Your task is to weave the following key points about a place named %q into a short, engaging, and respectful narrative story of about 2-3 paragraphs.\n\n", placeName)
	sb.WriteString("Key Points:\n")
	for _, p := range points {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	sb.WriteString("\nGenerated Story:\n")
	return sb.String()
}
