// Package assist holds the optional external collaborators of the archive:
// machine translation of record text and generative story writing.
// Both are capability interfaces so the API keeps working without them.
package assist

import "context"

// SourceLanguage is the language records are written in.
const SourceLanguage = "en"

// Translator translates text into a target language.
//
// Translate never fails: when the translation cannot be produced it returns
// text unchanged. Implementations log the underlying error themselves.
type Translator interface {
	Translate(ctx context.Context, text, target string) string
}

// NopTranslator returns every text unchanged.
// Used when no translation API key is configured.
type NopTranslator struct{}

func (NopTranslator) Translate(_ context.Context, text, _ string) string { return text }

// NeedsTranslation reports whether a target language differs from the
// source language. Blank means "no preference".
func NeedsTranslation(target string) bool {
	return target != "" && target != SourceLanguage
}
