package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/foodstation/chatbot/catalog"
)

const (
	classifyRetries = 1
	extractRetries  = 2
)

// chatModel is the slice of the langchaingo model surface the services
// need; *openai.LLM satisfies it.
type chatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// IntentResult is the outcome of intent classification. Category is always
// populated; Fallback carries canned reply text only for greeting/unknown.
type IntentResult struct {
	CorrectedInput string
	Category       MessageType
	Fallback       string
}

// EntityResult is the outcome of entity extraction. Every field except
// CorrectedInput may be absent.
type EntityResult struct {
	CorrectedInput string
	Restaurants    []string
	Dishes         []string
	Size           string
	Variant        string
	Qty            *int
}

type LLMService struct {
	model chatModel
}

func NewLLMService(model chatModel) *LLMService {
	return &LLMService{model: model}
}

// ClassifyIntent classifies the user message into one category of the
// closed intent set. On call or parse failure it retries once, then
// returns the general_inquiry fallback record together with the last error
// for observability. The returned record is always usable.
func (s *LLMService) ClassifyIntent(ctx context.Context, input string) (IntentResult, error) {
	var lastErr error

	for attempt := 0; attempt <= classifyRetries; attempt++ {
		raw, err := s.generate(ctx, classificationPrompt(), input)
		if err != nil {
			lastErr = err
			continue
		}

		var payload intentPayload
		if err := json.Unmarshal([]byte(extractJSONObject(raw)), &payload); err != nil {
			lastErr = fmt.Errorf("parse classification reply: %w", err)
			continue
		}

		return payload.toResult(input), nil
	}

	slog.Warn("intent classification fell back", "err", lastErr)

	return IntentResult{
		CorrectedInput: input,
		Category:       TypeGeneralInquiry,
	}, lastErr
}

// ExtractEntities pulls structured restaurant/dish/size/variant/quantity
// fields out of the user message. On failure it retries up to two more
// times, then returns an all-null record echoing the input. Missing keys
// in a successful parse are backfilled as null rather than failing.
func (s *LLMService) ExtractEntities(ctx context.Context, input string) (EntityResult, error) {
	var lastErr error

	for attempt := 0; attempt <= extractRetries; attempt++ {
		raw, err := s.generate(ctx, extractionPrompt(), input)
		if err != nil {
			lastErr = err
			continue
		}

		var payload entityPayload
		if err := json.Unmarshal([]byte(extractJSONObject(raw)), &payload); err != nil {
			lastErr = fmt.Errorf("parse extraction reply: %w", err)
			continue
		}

		return payload.toResult(input), nil
	}

	slog.Warn("entity extraction fell back", "err", lastErr)

	return EntityResult{CorrectedInput: input}, lastErr
}

func (s *LLMService) generate(ctx context.Context, system, user string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(user)},
		},
	}

	content, err := s.model.GenerateContent(
		ctx,
		messages,
		llms.WithJSONMode(),
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(content.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return content.Choices[0].Content, nil
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONObject tolerates models that wrap the JSON body in prose or
// code fences despite JSON mode.
func extractJSONObject(raw string) string {
	if match := jsonObjectRe.FindString(raw); match != "" {
		return match
	}

	return strings.TrimSpace(raw)
}

type intentPayload struct {
	CorrectedInput   *string `json:"corrected_input"`
	Category         *string `json:"category"`
	FallbackResponse *string `json:"fallback_response"`
}

func (p intentPayload) toResult(input string) IntentResult {
	result := IntentResult{CorrectedInput: input}

	if p.CorrectedInput != nil && strings.TrimSpace(*p.CorrectedInput) != "" {
		result.CorrectedInput = strings.TrimSpace(*p.CorrectedInput)
	}
	if p.Category != nil {
		result.Category = MessageType(strings.ToLower(strings.TrimSpace(*p.Category)))
	}
	if p.FallbackResponse != nil {
		result.Fallback = strings.TrimSpace(*p.FallbackResponse)
	}

	return result
}

type entityPayload struct {
	CorrectedInput *string  `json:"corrected_input"`
	Restaurant     nameList `json:"restaurant"`
	Dish           nameList `json:"dish"`
	Size           *string  `json:"size"`
	Variant        *string  `json:"variant"`
	OrderQty       looseInt `json:"order_qty"`
}

func (p entityPayload) toResult(input string) EntityResult {
	result := EntityResult{
		CorrectedInput: input,
		Restaurants:    canonicalNames(p.Restaurant, catalog.Restaurants),
		Dishes:         canonicalNames(p.Dish, catalog.Dishes),
		Qty:            p.OrderQty.value,
	}

	if p.CorrectedInput != nil && strings.TrimSpace(*p.CorrectedInput) != "" {
		result.CorrectedInput = strings.TrimSpace(*p.CorrectedInput)
	}
	if p.Size != nil {
		result.Size = catalog.NormalizeSize(*p.Size)
	}
	if p.Variant != nil && !isNullLiteral(*p.Variant) {
		result.Variant = strings.TrimSpace(*p.Variant)
	}

	return result
}

// canonicalNames snaps case-insensitive matches back to the catalog
// spelling and drops null literals the model sometimes emits.
func canonicalNames(names nameList, reference []string) []string {
	var out []string

	for _, name := range names.values {
		name = strings.TrimSpace(name)
		if name == "" || isNullLiteral(name) {
			continue
		}

		for _, ref := range reference {
			if strings.EqualFold(name, ref) {
				name = ref
				break
			}
		}

		out = append(out, name)
	}

	return out
}

func isNullLiteral(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "null")
}

// nameList accepts null, a bare string, or a list of strings. The
// extraction prompt asks for lists, but the model does not always comply.
type nameList struct {
	values []string
}

func (l *nameList) UnmarshalJSON(data []byte) error {
	l.values = nil

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			l.values = []string{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		l.values = many
		return nil
	}

	if string(data) == "null" {
		return nil
	}

	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

// looseInt accepts null, a JSON number, or a numeric string.
type looseInt struct {
	value *int
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	l.value = nil

	if string(data) == "null" {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		l.value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if isNullLiteral(s) || strings.TrimSpace(s) == "" {
			return nil
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("parse quantity %q: %w", s, err)
		}
		l.value = &parsed
		return nil
	}

	return fmt.Errorf("expected number or numeric string, got %s", string(data))
}
