package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/google/uuid"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append(opts, WithRequestOptions(option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0)))
	c := NewOpenAIClient("sk-test", "", opts...)
	require.NotNil(t, c)
	return c
}

func tipContext() *domain.CoachTipContext {
	return &domain.CoachTipContext{
		UserID: uuid.MustParse("660e8400-e29b-41d4-a716-446655440001"),
		Shift:  domain.ShiftNight,
		State:  domain.CoachingState{Status: domain.StatusAmber, Label: "Running on low sleep (nights)"},
		Tip:    domain.Tip{Score: 88, Title: "Shift Rhythm boost", Body: "Get 10 minutes of bright light soon after waking."},
	}
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	c := NewOpenAIClient("", "gpt-4o-mini")
	assert.Nil(t, c)

	_, err := c.PhraseTip(context.Background(), tipContext())
	assert.ErrorIs(t, err, ErrOpenAIUnavailable)
}

func TestPhraseTip(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion(`{"message":"  Step into daylight after you wake.  "}`))
	}, WithSystemPrompt("custom prompt"))

	msg, err := c.PhraseTip(context.Background(), tipContext())
	require.NoError(t, err)
	assert.Equal(t, "Step into daylight after you wake.", msg)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "custom prompt", messages[0].(map[string]any)["content"])
	assert.Contains(t, messages[1].(map[string]any)["content"], "Shift Rhythm boost")
}

func TestPhraseTip_Truncates(t *testing.T) {
	long := strings.Repeat("a", 400)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion(`{"message":"`+long+`"}`))
	})

	msg, err := c.PhraseTip(context.Background(), tipContext())
	require.NoError(t, err)
	assert.Len(t, msg, maxMessageLen)
}

func TestPhraseTip_BadResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "Step into daylight."},
		{"empty message", `{"message":"   "}`},
		{"wrong shape", `{"text":"hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, completion(tt.content))
			})
			_, err := c.PhraseTip(context.Background(), tipContext())
			assert.ErrorIs(t, err, ErrOpenAIResponse)
		})
	}
}

func TestPhraseTip_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`)
	})

	_, err := c.PhraseTip(context.Background(), tipContext())
	require.ErrorIs(t, err, ErrOpenAIRequest)
	assert.True(t, IsRateLimited(err))
	assert.False(t, IsRateLimited(ErrOpenAIRequest))
}
