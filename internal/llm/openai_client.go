package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are a supportive, non-medical wellness coach for shift workers.

You receive the user's current coaching state (green, amber or red), today's rhythm and
recovery scores, their sleep debt, their shift type and one coaching tip chosen by rules.

Your goal is to rewrite that tip as one short, warm message the user can act on today.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, medication or treatment.
- Keep the meaning of the tip; do not invent new recommendations.
- Match the tone to the status: calm for green, encouraging for amber, protective for red.
- At most 2 sentences and 280 characters.

You must respond as strict JSON with exactly this shape:

{"message": "..."}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the user's day and the tip to phrase:

%s

Respond in the required JSON format.`

const maxMessageLen = 280

// CoachTipLLM phrases a rule-selected coaching tip for the user.
type CoachTipLLM interface {
	PhraseTip(ctx context.Context, tipCtx *domain.CoachTipContext) (string, error)
}

// ClientOption configures an OpenAIClient.
type ClientOption func(*clientOptions)

type clientOptions struct {
	systemPrompt string
	request      []option.RequestOption
}

// WithSystemPrompt replaces DefaultSystemPrompt, typically with one loaded from Langfuse.
func WithSystemPrompt(prompt string) ClientOption {
	return func(o *clientOptions) {
		if strings.TrimSpace(prompt) != "" {
			o.systemPrompt = prompt
		}
	}
}

// WithRequestOptions passes options through to the OpenAI SDK.
func WithRequestOptions(opts ...option.RequestOption) ClientOption {
	return func(o *clientOptions) {
		o.request = append(o.request, opts...)
	}
}

// OpenAIClient implements CoachTipLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for phrasing tips.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...ClientOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	o := clientOptions{systemPrompt: DefaultSystemPrompt}
	for _, opt := range opts {
		opt(&o)
	}

	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, o.request...)
	return &OpenAIClient{
		client:       openai.NewClient(reqOpts...),
		model:        model,
		systemPrompt: o.systemPrompt,
	}
}

// PhraseTip calls OpenAI and returns the rewritten tip message.
func (c *OpenAIClient) PhraseTip(ctx context.Context, tipCtx *domain.CoachTipContext) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(tipCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, contextJSON)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		return "", fmt.Errorf("%w: empty message", ErrOpenAIResponse)
	}
	if r := []rune(msg); len(r) > maxMessageLen {
		msg = string(r[:maxMessageLen])
	}
	return msg, nil
}

// IsRateLimited reports whether err came from an HTTP 429 response.
func IsRateLimited(err error) bool {
	var apiErr *openai.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
