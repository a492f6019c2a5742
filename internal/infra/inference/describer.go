package inference

import (
	"context"
	"log/slog"
	"strings"

	"soko/config"
	"soko/internal/domain/service"

	"github.com/pemistahl/lingua-go"
)

const (
	taskText2Text = "text2text-generation"
	improvePrompt = "improve: "
)

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxLength int `json:"max_length"`
}

type generationResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// LanguageDetector reports whether text is Swahili.
type LanguageDetector func(text string) bool

// NewSwahiliDetector restricts lingua to the marketplace languages so
// detection stays cheap.
func NewSwahiliDetector() LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Swahili).
		Build()

	return func(text string) bool {
		lang, ok := detector.DetectLanguageOf(text)

		return ok && lang == lingua.Swahili
	}
}

// Describer rewrites listing descriptions with a text2text model.
type Describer struct {
	client            *Client
	model             string
	multilingualModel string
	maxLength         int
	isSwahili         LanguageDetector
	logger            *slog.Logger
}

// NewDescriber creates the description enhancer.
func NewDescriber(client *Client, detector LanguageDetector, cfg *config.Config, logger *slog.Logger) service.Describer {
	e := cfg.Enrichment

	return &Describer{
		client:            client,
		model:             e.DescriptionModel,
		multilingualModel: e.MultilingualModel,
		maxLength:         e.MaxDescriptionLength,
		isSwahili:         detector,
		logger:            logger,
	}
}

// Enhance returns the generated text, or text itself when generation fails
// or produces nothing.
func (d *Describer) Enhance(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	model := d.model
	if d.isSwahili != nil && d.isSwahili(text) {
		model = d.multilingualModel
	}

	var resp generationResponse
	err := d.client.Call(ctx, taskText2Text, model, generationRequest{
		Inputs:     improvePrompt + text,
		Parameters: generationParameters{MaxLength: d.maxLength},
	}, &resp)
	if err != nil {
		d.logger.ErrorContext(ctx, "AI description enhancement failed", slog.Any("error", err))

		return text
	}
	if len(resp) == 0 || strings.TrimSpace(resp[0].GeneratedText) == "" {
		return text
	}

	return resp[0].GeneratedText
}
