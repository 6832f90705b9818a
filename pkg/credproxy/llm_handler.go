package credproxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// llmModelHeader overrides the model-prefix routing of POST /v1/messages.
const llmModelHeader = "X-LLM-Model"

// messagesHandler handles POST /v1/messages: route on the model's provider
// prefix, inject that provider's key, and translate the wire shape for
// openai-compatible providers.
func (s *Server) messagesHandler(c *echo.Context) error {
	claims := tenantClaims(c)

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, 16*1024*1024))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}
	var reqBody map[string]interface{}
	if err := json.Unmarshal(raw, &reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}

	model, _ := reqBody["model"].(string)
	if override := c.Request().Header.Get(llmModelHeader); override != "" {
		model = override
	}
	providerName, bareModel, ok := SplitModel(model)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			"model must be prefixed with a known provider, e.g. anthropic/claude-sonnet-4-5")
	}
	provider := llmProviders[providerName]

	cfg, err := s.integrationConfig(c.Request().Context(), claims, provider.Integration)
	if err != nil {
		return err
	}
	base := provider.BaseURL(cfg)
	if base == "" {
		return echo.NewHTTPError(http.StatusFailedDependency, map[string]interface{}{
			"error":          "integration_not_configured",
			"integration":    provider.Integration,
			"missing_fields": []string{"region"},
		})
	}

	if !provider.OpenAICompatible {
		// Anthropic passthrough: only the model prefix is rewritten.
		reqBody["model"] = bareModel
		body, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		return s.forward(c, claims, provider.Integration, base+"/v1/messages", func(h http.Header) {
			provider.Inject(h, cfg)
			h.Set("Content-Type", "application/json")
		}, bytes.NewReader(body))
	}

	stream, _ := reqBody["stream"].(bool)
	translated := MessagesToOpenAI(reqBody, bareModel)
	body, err := json.Marshal(translated)
	if err != nil {
		return err
	}

	upstream, err := http.NewRequestWithContext(c.Request().Context(),
		http.MethodPost, base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "invalid upstream url")
	}
	upstream.Header.Set("Content-Type", "application/json")
	provider.Inject(upstream.Header, cfg)

	start := time.Now()
	resp, err := s.doWithConnectRetry(c.Request().Context(), upstream, false)
	if err != nil {
		s.accessLog(claims, provider.Integration, http.MethodPost, "/v1/messages", 0, 0, start, err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unreachable")
	}
	defer resp.Body.Close()
	s.accessLog(claims, provider.Integration, http.MethodPost, "/v1/messages", resp.StatusCode, 0, start, nil)

	if resp.StatusCode != http.StatusOK {
		// Upstream errors pass through untranslated.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return c.Blob(resp.StatusCode, "application/json", msg)
	}

	if stream {
		c.Response().Header().Set("Content-Type", "text/event-stream")
		c.Response().Header().Set("Cache-Control", "no-cache")
		c.Response().WriteHeader(http.StatusOK)
		return TranslateOpenAIStream(resp.Body, c.Response(), model)
	}

	var upstreamBody map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&upstreamBody); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "unparseable upstream response")
	}
	return c.JSON(http.StatusOK, OpenAIToMessages(upstreamBody, model))
}
