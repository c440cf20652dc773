package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ModelCaller performs one generation call against the provider.
// The retry and normalization logic lives above this seam so it can be
// exercised without the network.
type ModelCaller interface {
	Generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

// GeminiCaller is the production ModelCaller backed by the Gemini API.
type GeminiCaller struct {
	client *genai.Client
}

// NewGeminiCaller builds a caller keyed with the given API key.
func NewGeminiCaller(ctx context.Context, apiKey string) (*GeminiCaller, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiCaller{client: client}, nil
}

func (c *GeminiCaller) Generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Generator builds provider requests from the content-type table and turns
// raw model output into normalized responses.
type Generator struct {
	caller      ModelCaller
	logger      *slog.Logger
	maxRetries  int
	backoffBase time.Duration
}

// NewGenerator wires a generator with the default retry policy: up to three
// retries with exponential backoff starting at one second.
func NewGenerator(caller ModelCaller, logger *slog.Logger) *Generator {
	return &Generator{
		caller:      caller,
		logger:      logger,
		maxRetries:  3,
		backoffBase: time.Second,
	}
}

// Generate produces content of the given type for a study section and its
// topic list. Transient upstream failures are retried; terminal failures and
// exhausted retries come back as a categorized *Error.
func (g *Generator) Generate(ctx context.Context, t Type, section, topics string) (Response, error) {
	profile, ok := ProfileFor(t)
	if !ok {
		return Response{}, newError(CategoryGeneric, nil)
	}
	cfg := buildConfig(t, profile)
	prompt := userPrompt(t, section, topics)

	var text string
	for attempt := 0; ; attempt++ {
		var err error
		text, err = g.caller.Generate(ctx, profile.Model, prompt, cfg)
		if err == nil {
			break
		}
		if !transient(err) || attempt >= g.maxRetries {
			g.logger.Error("generation failed",
				"type", t, "model", profile.Model, "attempts", attempt+1, "error", err)
			return Response{}, categorize(err)
		}

		delay := g.backoffBase << attempt
		g.logger.Warn("transient generation failure, backing off",
			"type", t, "model", profile.Model, "attempt", attempt+1, "delay", delay.String(), "error", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Response{}, categorize(ctx.Err())
		}
	}

	if text == "" {
		return Response{}, newError(CategoryGeneric, nil)
	}

	response := g.normalize(t, profile, text)
	response.Model = profile.Model
	return response, nil
}

func buildConfig(t Type, profile ModelProfile) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompts[t], genai.RoleUser),
		Temperature:       genai.Ptr(profile.Temperature),
		MaxOutputTokens:   profile.MaxOutputTokens,
	}
	if profile.Structured {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = questionAnswerSchema
	}
	if profile.ThinkingBudget != nil {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: profile.ThinkingBudget}
	}
	return cfg
}

// answerDelimiter is the legacy prompt/answer separator some responses still
// carry when the model ignores the JSON requirement.
var answerDelimiter = regexp.MustCompile(`(?i)---RESPUESTA---`)

const unparsedAnswerNote = `No se pudo parsear la respuesta correcta de este tipo de contenido. La salida original está en el campo "question".`

// normalize maps raw model text to the {question, answer} contract.
// Structured types degrade gracefully: JSON parse, then delimiter split, then
// a diagnostic placeholder. This never fails.
func (g *Generator) normalize(t Type, profile ModelProfile, text string) Response {
	if !profile.Structured {
		return Response{Question: strings.TrimSpace(text)}
	}

	var parsed struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		question := strings.TrimSpace(parsed.Question)
		answer := strings.TrimSpace(parsed.Answer)
		if question != "" && answer != "" {
			return Response{Question: question, Answer: answer}
		}
	}

	g.logger.Warn("structured parse failed, falling back to delimiter split", "type", t)
	if parts := answerDelimiter.Split(text, 2); len(parts) == 2 {
		question := strings.TrimSpace(parts[0])
		answer := strings.TrimSpace(parts[1])
		if question == "" {
			question = "Error: pregunta no disponible en la respuesta."
		}
		if answer == "" {
			answer = "Error: respuesta no disponible."
		}
		return Response{Question: question, Answer: answer}
	}

	return Response{Question: strings.TrimSpace(text), Answer: unparsedAnswerNote}
}
