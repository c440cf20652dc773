package content

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"google.golang.org/genai"
)

type fakeCaller struct {
	calls     int
	responses []callerResult
	lastModel string
	lastCfg   *genai.GenerateContentConfig
}

type callerResult struct {
	text string
	err  error
}

// Generate replays the scripted results, repeating the last one once the
// script runs out.
func (f *fakeCaller) Generate(_ context.Context, model, _ string, cfg *genai.GenerateContentConfig) (string, error) {
	f.lastModel = model
	f.lastCfg = cfg
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	result := f.responses[idx]
	return result.text, result.err
}

func newTestGenerator(caller ModelCaller) *Generator {
	g := NewGenerator(caller, slog.New(slog.DiscardHandler))
	g.backoffBase = 0
	return g
}

func TestCaseProfileSelection(t *testing.T) {
	profile, ok := ProfileFor(TypeCase)
	if !ok {
		t.Fatal("case profile missing")
	}
	if profile.Model != "gemini-2.5-pro" {
		t.Fatalf("unexpected model: %s", profile.Model)
	}
	if profile.Temperature > 0.15 {
		t.Fatalf("case temperature too high: %v", profile.Temperature)
	}
	if !profile.Structured {
		t.Fatal("case output must be schema-forced")
	}

	cfg := buildConfig(TypeCase, profile)
	if cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("unexpected mime type: %s", cfg.ResponseMIMEType)
	}
	if cfg.ResponseSchema == nil || len(cfg.ResponseSchema.Required) != 2 {
		t.Fatalf("unexpected schema: %+v", cfg.ResponseSchema)
	}
	for _, field := range []string{"question", "answer"} {
		if _, ok := cfg.ResponseSchema.Properties[field]; !ok {
			t.Fatalf("schema missing %q", field)
		}
	}
}

func TestMnemonicProfileDisablesThinking(t *testing.T) {
	profile, _ := ProfileFor(TypeMnemonic)
	if profile.Model != "gemini-2.5-flash-lite" {
		t.Fatalf("unexpected model: %s", profile.Model)
	}
	if profile.Temperature < 0.7 {
		t.Fatalf("mnemonics want a creative temperature, got %v", profile.Temperature)
	}
	cfg := buildConfig(TypeMnemonic, profile)
	if cfg.ResponseSchema != nil {
		t.Fatal("mnemonics must not force structured output")
	}
	if cfg.ThinkingConfig == nil || cfg.ThinkingConfig.ThinkingBudget == nil || *cfg.ThinkingConfig.ThinkingBudget != 0 {
		t.Fatalf("thinking should be disabled: %+v", cfg.ThinkingConfig)
	}
}

func TestGenerateRetriesTransientFailures(t *testing.T) {
	transientErr := genai.APIError{Code: 503, Message: "service unavailable"}
	caller := &fakeCaller{responses: []callerResult{
		{err: transientErr},
		{err: transientErr},
		{err: transientErr},
		{text: "**Mnemotecnia:** PARA"},
	}}

	resp, err := newTestGenerator(caller).Generate(context.Background(), TypeMnemonic, "Ética", "confidencialidad")
	if err != nil {
		t.Fatalf("expected success within retry bound: %v", err)
	}
	if caller.calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", caller.calls)
	}
	if resp.Question != "**Mnemotecnia:** PARA" || resp.Model != "gemini-2.5-flash-lite" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{err: genai.APIError{Code: 500, Message: "internal"}},
	}}

	_, err := newTestGenerator(caller).Generate(context.Background(), TypeExplain, "Ética", "temas")
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Category != CategoryGeneric {
		t.Fatalf("expected generic failure, got %v", err)
	}
	if caller.calls != 4 {
		t.Fatalf("expected 4 attempts (1 + 3 retries), got %d", caller.calls)
	}
	if !strings.Contains(err.Error(), "No se pudo generar") {
		t.Fatalf("user message leaked provider detail: %q", err.Error())
	}
}

func TestGenerateQuotaMessage(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{err: genai.APIError{Code: 429, Message: "quota exceeded"}},
	}}

	_, err := newTestGenerator(caller).Generate(context.Background(), TypeQuestion, "Ética", "temas")
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Category != CategoryQuota {
		t.Fatalf("expected quota category, got %v", err)
	}
}

func TestGenerateTerminalFailureNotRetried(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{err: genai.APIError{Code: 400, Message: "blocked by safety"}},
	}}

	_, err := newTestGenerator(caller).Generate(context.Background(), TypeCase, "Ética", "temas")
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Category != CategoryBlocked {
		t.Fatalf("expected blocked category, got %v", err)
	}
	if caller.calls != 1 {
		t.Fatalf("terminal failure must not be retried, got %d calls", caller.calls)
	}
}

func TestGenerateNetworkCategory(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{err: &url.Error{Op: "Post", URL: "https://example.com", Err: errors.New("connection refused")}},
	}}

	_, err := newTestGenerator(caller).Generate(context.Background(), TypeExplain, "Ética", "temas")
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Category != CategoryNetwork {
		t.Fatalf("expected network category, got %v", err)
	}
}

func TestNormalizeStructuredJSON(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{text: `{"question":"¿Cuál opción es correcta? A) ... D) ...","answer":"B. Porque la Ley 408 aplica."}`},
	}}

	resp, err := newTestGenerator(caller).Generate(context.Background(), TypeQuestion, "Ética", "temas")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(resp.Question, "¿Cuál opción") || !strings.HasPrefix(resp.Answer, "B.") {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNormalizeDelimiterFallback(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{text: "Enunciado de la pregunta con opciones.\n---respuesta---\nLa correcta es C."},
	}}

	resp, err := newTestGenerator(caller).Generate(context.Background(), TypeQuestion, "Ética", "temas")
	if err != nil {
		t.Fatalf("fallback must not fail: %v", err)
	}
	if resp.Question != "Enunciado de la pregunta con opciones." {
		t.Fatalf("unexpected question: %q", resp.Question)
	}
	if resp.Answer != "La correcta es C." {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
}

func TestNormalizePlaceholderFallback(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{text: "texto plano sin estructura ni delimitador"},
	}}

	resp, err := newTestGenerator(caller).Generate(context.Background(), TypeCase, "Ética", "temas")
	if err != nil {
		t.Fatalf("fallback must not fail: %v", err)
	}
	if resp.Question != "texto plano sin estructura ni delimitador" {
		t.Fatalf("unexpected question: %q", resp.Question)
	}
	if resp.Answer != unparsedAnswerNote {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
}

func TestFreeTextTypesSkipAnswer(t *testing.T) {
	caller := &fakeCaller{responses: []callerResult{
		{text: "- La confidencialidad protege al cliente..."},
	}}

	resp, err := newTestGenerator(caller).Generate(context.Background(), TypeExplain, "Ética", "temas")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Answer != "" {
		t.Fatalf("free-text types carry no answer field, got %q", resp.Answer)
	}
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"question", "case", "explain", "mnemonic"} {
		if _, ok := ParseType(valid); !ok {
			t.Fatalf("%q should parse", valid)
		}
	}
	if _, ok := ParseType("poem"); ok {
		t.Fatal("unknown type must not parse")
	}
}
