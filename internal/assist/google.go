package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleTranslator translates through the Cloud Translation v2 REST API.
type GoogleTranslator struct {
	svc *translate.Service
	log *slog.Logger
}

// NewGoogleTranslator builds a translator authenticated by API key.
// Extra client options (e.g. option.WithEndpoint in tests) are appended.
func NewGoogleTranslator(ctx context.Context, apiKey string, log *slog.Logger, opts ...option.ClientOption) (*GoogleTranslator, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("assist.NewGoogleTranslator: %w", err)
	}
	return &GoogleTranslator{svc: svc, log: log}, nil
}

// Translate returns the translation of text, or text itself if the call fails
// or the response carries no translation.
func (g *GoogleTranslator) Translate(ctx context.Context, text, target string) string {
	if strings.TrimSpace(text) == "" || !NeedsTranslation(target) {
		return text
	}
	resp, err := g.svc.Translations.List([]string{text}, target).
		Source(SourceLanguage).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		g.log.WarnContext(ctx, "translation failed", "target", target, "error", err)
		return text
	}
	if len(resp.Translations) == 0 || resp.Translations[0].TranslatedText == "" {
		g.log.WarnContext(ctx, "translation returned no text", "target", target)
		return text
	}
	return resp.Translations[0].TranslatedText
}
