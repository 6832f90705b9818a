package credproxy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// llmProvider describes one model-prefix route of POST /v1/messages.
type llmProvider struct {
	Integration string
	// OpenAICompatible providers get request/response translation; the rest
	// pass the Messages shape through unchanged.
	OpenAICompatible bool
	BaseURL          func(cfg map[string]interface{}) string
	Inject           func(h http.Header, cfg map[string]interface{})
}

var llmProviders = map[string]llmProvider{
	"anthropic": {
		Integration: "anthropic",
		BaseURL:     fixedBase("https://api.anthropic.com"),
		Inject: func(h http.Header, cfg map[string]interface{}) {
			h.Set("x-api-key", cfgStr(cfg, "api_key"))
			if h.Get("anthropic-version") == "" {
				h.Set("anthropic-version", "2023-06-01")
			}
		},
	},
	"openai": {
		Integration:      "openai",
		OpenAICompatible: true,
		BaseURL: func(cfg map[string]interface{}) string {
			if base := cfgStr(cfg, "base_url"); base != "" {
				return strings.TrimSuffix(base, "/")
			}
			return "https://api.openai.com/v1"
		},
		Inject: bearer("api_key"),
	},
	"gemini": {
		Integration:      "gemini",
		OpenAICompatible: true,
		BaseURL:          fixedBase("https://generativelanguage.googleapis.com/v1beta/openai"),
		Inject:           bearer("api_key"),
	},
	"openrouter": {
		Integration:      "openrouter",
		OpenAICompatible: true,
		BaseURL:          fixedBase("https://openrouter.ai/api/v1"),
		Inject:           bearer("api_key"),
	},
	"bedrock": {
		Integration:      "bedrock",
		OpenAICompatible: true,
		BaseURL: func(cfg map[string]interface{}) string {
			region := cfgStr(cfg, "region")
			if region == "" {
				return ""
			}
			return fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com/openai/v1", region)
		},
		Inject: bearer("secret_access_key"),
	},
	"azure_ai": {
		Integration:      "azure_ai",
		OpenAICompatible: true,
		BaseURL: func(cfg map[string]interface{}) string {
			return strings.TrimSuffix(cfgStr(cfg, "endpoint"), "/") + "/openai/v1"
		},
		Inject: func(h http.Header, cfg map[string]interface{}) {
			h.Set("api-key", cfgStr(cfg, "api_key"))
		},
	},
}

// SplitModel splits "provider/model" into its parts.
func SplitModel(model string) (provider, rest string, ok bool) {
	provider, rest, ok = strings.Cut(model, "/")
	if !ok || provider == "" || rest == "" {
		return "", "", false
	}
	if _, known := llmProviders[provider]; !known {
		return "", "", false
	}
	return provider, rest, true
}

// MessagesToOpenAI converts a normalized Messages request body into the
// chat-completions shape. The model field is rewritten to the bare model id.
func MessagesToOpenAI(req map[string]interface{}, model string) map[string]interface{} {
	out := map[string]interface{}{"model": model}

	var msgs []map[string]interface{}
	if system, ok := req["system"].(string); ok && system != "" {
		msgs = append(msgs, map[string]interface{}{"role": "system", "content": system})
	}
	if raw, ok := req["messages"].([]interface{}); ok {
		for _, item := range raw {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			role, _ := m["role"].(string)
			msgs = append(msgs, map[string]interface{}{
				"role":    role,
				"content": flattenContent(m["content"]),
			})
		}
	}
	out["messages"] = msgs

	if v, ok := req["max_tokens"]; ok {
		out["max_tokens"] = v
	}
	if v, ok := req["temperature"]; ok {
		out["temperature"] = v
	}
	if v, ok := req["stop_sequences"].([]interface{}); ok {
		out["stop"] = v
	}
	if v, ok := req["stream"].(bool); ok && v {
		out["stream"] = true
	}
	return out
}

// flattenContent joins Messages content blocks into one string.
func flattenContent(content interface{}) string {
	switch c := content.(type) {
	case string:
		return c
	case []interface{}:
		var parts []string
		for _, item := range c {
			block, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if block["type"] == "text" {
				if text, ok := block["text"].(string); ok {
					parts = append(parts, text)
				}
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// OpenAIToMessages converts a chat-completions response into the Messages
// shape. model is echoed back with its provider prefix.
func OpenAIToMessages(resp map[string]interface{}, model string) map[string]interface{} {
	out := map[string]interface{}{
		"id":    resp["id"],
		"type":  "message",
		"role":  "assistant",
		"model": model,
	}

	text := ""
	stopReason := "end_turn"
	if choices, ok := resp["choices"].([]interface{}); ok && len(choices) > 0 {
		if choice, ok := choices[0].(map[string]interface{}); ok {
			if message, ok := choice["message"].(map[string]interface{}); ok {
				text, _ = message["content"].(string)
			}
			switch choice["finish_reason"] {
			case "length":
				stopReason = "max_tokens"
			case "stop", nil:
				stopReason = "end_turn"
			default:
				stopReason, _ = choice["finish_reason"].(string)
			}
		}
	}
	out["content"] = []interface{}{
		map[string]interface{}{"type": "text", "text": text},
	}
	out["stop_reason"] = stopReason

	usage := map[string]interface{}{}
	if u, ok := resp["usage"].(map[string]interface{}); ok {
		usage["input_tokens"] = u["prompt_tokens"]
		usage["output_tokens"] = u["completion_tokens"]
	}
	out["usage"] = usage
	return out
}

// TranslateOpenAIStream reads a chat-completions SSE stream and writes the
// Messages event sequence (message_start, content_block_*, message_delta,
// message_stop). Each event is flushed immediately.
func TranslateOpenAIStream(r io.Reader, w io.Writer, model string) error {
	flusher, _ := w.(http.Flusher)
	emit := func(event string, data map[string]interface{}) error {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, raw); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	if err := emit("message_start", map[string]interface{}{
		"type": "message_start",
		"message": map[string]interface{}{
			"type": "message", "role": "assistant", "model": model,
			"content": []interface{}{},
		},
	}); err != nil {
		return err
	}
	if err := emit("content_block_start", map[string]interface{}{
		"type": "content_block_start", "index": 0,
		"content_block": map[string]interface{}{"type": "text", "text": ""},
	}); err != nil {
		return err
	}

	stopReason := "end_turn"
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			break
		}
		var chunk map[string]interface{}
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		choices, _ := chunk["choices"].([]interface{})
		if len(choices) == 0 {
			continue
		}
		choice, _ := choices[0].(map[string]interface{})
		if reason, ok := choice["finish_reason"].(string); ok && reason != "" {
			if reason == "length" {
				stopReason = "max_tokens"
			}
			continue
		}
		delta, _ := choice["delta"].(map[string]interface{})
		text, _ := delta["content"].(string)
		if text == "" {
			continue
		}
		if err := emit("content_block_delta", map[string]interface{}{
			"type": "content_block_delta", "index": 0,
			"delta": map[string]interface{}{"type": "text_delta", "text": text},
		}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := emit("content_block_stop", map[string]interface{}{
		"type": "content_block_stop", "index": 0,
	}); err != nil {
		return err
	}
	if err := emit("message_delta", map[string]interface{}{
		"type":  "message_delta",
		"delta": map[string]interface{}{"stop_reason": stopReason},
	}); err != nil {
		return err
	}
	return emit("message_stop", map[string]interface{}{"type": "message_stop"})
}
