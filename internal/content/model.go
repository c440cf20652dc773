package content

import (
	"strings"

	"google.golang.org/genai"
)

// Type identifies what kind of study material to generate.
type Type string

const (
	TypeQuestion Type = "question"
	TypeCase     Type = "case"
	TypeExplain  Type = "explain"
	TypeMnemonic Type = "mnemonic"
)

// ParseType validates a wire value into a Type.
func ParseType(raw string) (Type, bool) {
	switch Type(raw) {
	case TypeQuestion, TypeCase, TypeExplain, TypeMnemonic:
		return Type(raw), true
	}
	return "", false
}

// Response is the normalized generation result. Answer is empty for the
// free-text types (explain, mnemonic).
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Model    string `json:"model,omitempty"`
}

// ModelProfile fixes the provider parameters for one content type.
// Adding a content type is a data change here, not new branching.
type ModelProfile struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Structured      bool
	// ThinkingBudget: nil keeps the provider default, -1 requests dynamic
	// thinking, 0 disables it for the cheapest/fastest path.
	ThinkingBudget *int32
}

var modelProfiles = map[Type]ModelProfile{
	// Complex clinical cases need the deepest reasoning: most capable model,
	// near-deterministic, schema-forced output, room for a long discussion.
	TypeCase: {
		Model:           "gemini-2.5-pro",
		Temperature:     0.1,
		MaxOutputTokens: 4096,
		Structured:      true,
	},
	TypeQuestion: {
		Model:           "gemini-2.5-flash",
		Temperature:     0.15,
		MaxOutputTokens: 2048,
		Structured:      true,
		ThinkingBudget:  genai.Ptr(int32(-1)),
	},
	TypeExplain: {
		Model:           "gemini-2.5-flash",
		Temperature:     0.2,
		MaxOutputTokens: 2048,
		ThinkingBudget:  genai.Ptr(int32(-1)),
	},
	// Mnemonics trade accuracy for creativity: cheapest model, high
	// temperature, thinking off.
	TypeMnemonic: {
		Model:           "gemini-2.5-flash-lite",
		Temperature:     0.75,
		MaxOutputTokens: 2048,
		ThinkingBudget:  genai.Ptr(int32(0)),
	},
}

// ProfileFor returns the provider parameters for a content type.
func ProfileFor(t Type) (ModelProfile, bool) {
	profile, ok := modelProfiles[t]
	return profile, ok
}

// ApplyModelOverrides swaps the provider model for the given content types,
// keeping every other parameter from the default table. Blank values and
// unknown types are ignored. Startup configuration only, not safe once
// requests are being served.
func ApplyModelOverrides(overrides map[Type]string) {
	for t, model := range overrides {
		model = strings.TrimSpace(model)
		if model == "" {
			continue
		}
		profile, ok := modelProfiles[t]
		if !ok {
			continue
		}
		profile.Model = model
		modelProfiles[t] = profile
	}
}

// questionAnswerSchema forces structured {question, answer} output.
var questionAnswerSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question": {
			Type:        genai.TypeString,
			Description: "The complete test question or clinical case description, including all multiple-choice options.",
		},
		"answer": {
			Type:        genai.TypeString,
			Description: "The detailed correct answer, including the letter of the correct option or the full clinical rationale.",
		},
	},
	Required: []string{"question", "answer"},
}

// ModelInfo is a UI-facing card describing the model behind a content type.
type ModelInfo struct {
	Model       string `json:"model"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
	Speed       string `json:"speed"`
	Quality     string `json:"quality"`
}

var modelCards = map[string]ModelInfo{
	"gemini-2.5-pro": {
		Name:        "Gemini 2.5 Pro",
		Description: "Modelo más avanzado para razonamiento complejo y casos clínicos (Alta Precisión)",
		Cost:        "Alto",
		Speed:       "Lento",
		Quality:     "Excelente",
	},
	"gemini-2.5-flash": {
		Name:        "Gemini 2.5 Flash",
		Description: "Modelo balanceado y rápido para uso general (Precisión Media-Alta)",
		Cost:        "Medio",
		Speed:       "Rápido",
		Quality:     "Muy bueno",
	},
	"gemini-2.5-flash-lite": {
		Name:        "Gemini 2.5 Flash Lite",
		Description: "Modelo económico y rápido para tareas simples (Bajo Costo/Velocidad Máxima)",
		Cost:        "Bajo",
		Speed:       "Muy rápido",
		Quality:     "Bueno",
	},
}

// InfoFor returns the model card for a content type. Overridden models
// without a card get a bare entry naming the model.
func InfoFor(t Type) (ModelInfo, bool) {
	profile, ok := modelProfiles[t]
	if !ok {
		return ModelInfo{}, false
	}
	card := modelCards[profile.Model]
	if card.Name == "" {
		card.Name = profile.Model
	}
	card.Model = profile.Model
	return card, true
}
