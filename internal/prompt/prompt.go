// Package prompt maps a detail level to its fixed instruction template and assembles the request sent to the model, truncating oversized input to a strict prefix.
package prompt

import (
	"unicode/utf8"

	"github.com/0x0BSoD/summarize/internal/model"
)

const briefInstruction = `You are a professional summarizer. Provide a concise summary in 2-3 sentences
highlighting only the most critical points. Be direct and factual.`

const mediumInstruction = `You are a professional summarizer. Provide a clear summary in one well-structured
paragraph covering the main ideas, key takeaways, and most important information.
Be comprehensive but concise.`

const detailedInstruction = `You are a professional summarizer. Provide a comprehensive summary with
multiple paragraphs covering:
1. Main themes and purpose
2. Key points and arguments
3. Important details and structure
4. Conclusions or outcomes
Be thorough while maintaining clarity.`

// Instruction returns the instruction template for a detail level.
// The mapping is total: every valid level has exactly one template.
func Instruction(level model.DetailLevel) string {
	switch level {
	case model.DetailBrief:
		return briefInstruction
	case model.DetailDetailed:
		return detailedInstruction
	}
	return mediumInstruction
}

// DefaultMaxChars bounds the document text sent upstream. Roughly 25k tokens.
const DefaultMaxChars = 100000

// Builder assembles summary requests. MaxChars overrides DefaultMaxChars
// when positive.
type Builder struct {
	MaxChars int
}

// Build composes the request for a document. Text longer than the bound is
// cut to a strict prefix, backed off to a rune boundary; the second return
// value reports whether that happened.
func (b Builder) Build(level model.DetailLevel, doc model.Document, modelID string) (model.SummaryRequest, bool) {
	limit := b.MaxChars
	if limit <= 0 {
		limit = DefaultMaxChars
	}

	text, truncated := truncate(doc.Text, limit)

	return model.SummaryRequest{
		Instruction: Instruction(level),
		Text:        text,
		Model:       modelID,
	}, truncated
}

func truncate(text string, limit int) (string, bool) {
	if len(text) <= limit {
		return text, false
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut], true
}
