package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/public/v2/prompts/coach-tip", r.URL.Path)
		assert.Equal(t, "production", r.URL.Query().Get("label"))
		_, _ = w.Write([]byte(`{"type":"chat","prompt":[
			{"role":"system","content":"You coach shift workers."},
			{"type":"placeholder","name":"history"},
			{"role":"user","content":""}
		]}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "prompts", "coach.txt")
	got, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk",
		PromptName: "coach-tip", PromptLabel: "production",
		SavePath: path,
	})
	require.NoError(t, err)

	want := "SYSTEM: You coach shift workers.\n\nMESSAGE: {{history}}"
	assert.Equal(t, want, got)

	cached, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(cached))
}

func TestLoadPrompt_FallsBackToFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "coach.txt")
	require.NoError(t, os.WriteFile(path, []byte("local prompt"), 0o600))

	got, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk",
		PromptName: "coach-tip", SavePath: path, Fallback: "built-in",
	})
	require.NoError(t, err)
	assert.Equal(t, "local prompt", got)
}

func TestLoadPrompt_BuiltInFallback(t *testing.T) {
	got, err := LoadPrompt(context.Background(), PromptLoaderConfig{PromptName: "coach-tip", Fallback: "built-in"})
	require.NoError(t, err)
	assert.Equal(t, "built-in", got)

	_, err = LoadPrompt(context.Background(), PromptLoaderConfig{})
	assert.Error(t, err)
}

func TestLoadPrompt_TextPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"text","prompt":"Be brief."}`))
	}))
	defer srv.Close()

	got, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk", PromptName: "coach-tip",
	})
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", got)
}
