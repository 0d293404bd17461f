package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PromptLoaderConfig says where the coach prompt lives: a managed Langfuse
// prompt, a local copy, and finally a built-in default.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	// SavePath caches the last fetched prompt and serves as the offline fallback.
	SavePath string
	// Fallback is returned when neither Langfuse nor SavePath yields a prompt.
	Fallback string
	Logger   *zap.Logger
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt resolves the prompt text. A fetched prompt is written to SavePath.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("langfuse").With(zap.String("prompt", cfg.PromptName))

	if cfg.PromptName != "" {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := savePromptToFile(cfg.SavePath, prompt); err != nil {
				log.Warn("failed to cache prompt locally", zap.Error(err))
			}
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			log.Warn("prompt fetch failed", zap.Error(err))
		}
	}

	prompt, err := readPromptFromFile(cfg.SavePath)
	if err == nil {
		return prompt, nil
	}
	if cfg.Fallback != "" {
		log.Debug("using built-in prompt", zap.NamedError("file_error", err))
		return cfg.Fallback, nil
	}
	return "", err
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		u.RawQuery = url.Values{"label": {cfg.PromptLabel}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// flattenChatMessages renders a chat prompt as "ROLE: content" blocks.
// Placeholders become {{name}}.
func flattenChatMessages(messages []chatPromptMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			content = ""
			if msg.Name != "" {
				content = "{{" + msg.Name + "}}"
			}
		}
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		b.WriteString(strings.ToUpper(role))
		b.WriteString(": ")
		b.WriteString(content)
	}
	return b.String()
}

func readPromptFromFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("no local prompt file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func savePromptToFile(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
