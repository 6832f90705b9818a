package credproxy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitModel(t *testing.T) {
	provider, model, ok := SplitModel("openai/gpt-4o")
	require.True(t, ok)
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "gpt-4o", model)

	_, _, ok = SplitModel("gpt-4o")
	assert.False(t, ok)

	_, _, ok = SplitModel("nonesuch/model")
	assert.False(t, ok)

	provider, model, ok = SplitModel("bedrock/anthropic.claude-v2")
	require.True(t, ok)
	assert.Equal(t, "bedrock", provider)
	assert.Equal(t, "anthropic.claude-v2", model)
}

func TestMessagesToOpenAI(t *testing.T) {
	req := map[string]interface{}{
		"model":      "openai/gpt-4o",
		"max_tokens": float64(1024),
		"system":     "You are an SRE assistant.",
		"messages": []interface{}{
			map[string]interface{}{"role": "user", "content": "why is p99 up?"},
			map[string]interface{}{
				"role": "assistant",
				"content": []interface{}{
					map[string]interface{}{"type": "text", "text": "checking"},
					map[string]interface{}{"type": "text", "text": "the dashboards"},
				},
			},
		},
		"temperature": 0.2,
		"stream":      true,
	}
	out := MessagesToOpenAI(req, "gpt-4o")
	assert.Equal(t, "gpt-4o", out["model"])
	assert.Equal(t, float64(1024), out["max_tokens"])
	assert.Equal(t, 0.2, out["temperature"])
	assert.Equal(t, true, out["stream"])

	msgs := out["messages"].([]map[string]interface{})
	require.Len(t, msgs, 3)
	assert.Equal(t, "system", msgs[0]["role"])
	assert.Equal(t, "You are an SRE assistant.", msgs[0]["content"])
	assert.Equal(t, "why is p99 up?", msgs[1]["content"])
	assert.Equal(t, "checking\nthe dashboards", msgs[2]["content"])
}

func TestOpenAIToMessages(t *testing.T) {
	resp := map[string]interface{}{
		"id": "chatcmpl-1",
		"choices": []interface{}{
			map[string]interface{}{
				"message":       map[string]interface{}{"role": "assistant", "content": "scale up the pool"},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     float64(20),
			"completion_tokens": float64(7),
		},
	}
	out := OpenAIToMessages(resp, "openai/gpt-4o")
	assert.Equal(t, "message", out["type"])
	assert.Equal(t, "assistant", out["role"])
	assert.Equal(t, "openai/gpt-4o", out["model"])
	assert.Equal(t, "end_turn", out["stop_reason"])

	content := out["content"].([]interface{})
	require.Len(t, content, 1)
	assert.Equal(t, "scale up the pool", content[0].(map[string]interface{})["text"])

	usage := out["usage"].(map[string]interface{})
	assert.Equal(t, float64(20), usage["input_tokens"])
	assert.Equal(t, float64(7), usage["output_tokens"])
}

func TestOpenAIToMessagesLengthStop(t *testing.T) {
	resp := map[string]interface{}{
		"choices": []interface{}{
			map[string]interface{}{
				"message":       map[string]interface{}{"content": "truncated"},
				"finish_reason": "length",
			},
		},
	}
	out := OpenAIToMessages(resp, "openai/gpt-4o")
	assert.Equal(t, "max_tokens", out["stop_reason"])
}

func TestTranslateOpenAIStream(t *testing.T) {
	upstream := strings.Join([]string{
		`data: {"choices":[{"delta":{"role":"assistant"}}]}`,
		`data: {"choices":[{"delta":{"content":"roll "}}]}`,
		`data: {"choices":[{"delta":{"content":"back"}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"stop"}]}`,
		`data: [DONE]`,
		"",
	}, "\n")

	var buf bytes.Buffer
	err := TranslateOpenAIStream(strings.NewReader(upstream), &buf, "openai/gpt-4o")
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "event: message_start")
	assert.Contains(t, out, "event: content_block_start")
	assert.Contains(t, out, `"text":"roll "`)
	assert.Contains(t, out, `"text":"back"`)
	assert.Contains(t, out, "event: content_block_stop")
	assert.Contains(t, out, `"stop_reason":"end_turn"`)
	assert.Contains(t, out, "event: message_stop")

	// Events are ordered.
	assert.Less(t, strings.Index(out, "message_start"), strings.Index(out, "content_block_delta"))
	assert.Less(t, strings.Index(out, "content_block_stop"), strings.Index(out, "message_stop"))
}

func TestTranslateOpenAIStreamLength(t *testing.T) {
	upstream := strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"partial"}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"length"}]}`,
		`data: [DONE]`,
		"",
	}, "\n")
	var buf bytes.Buffer
	require.NoError(t, TranslateOpenAIStream(strings.NewReader(upstream), &buf, "m"))
	assert.Contains(t, buf.String(), `"stop_reason":"max_tokens"`)
}
