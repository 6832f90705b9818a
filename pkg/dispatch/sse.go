package dispatch

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// SSEEvent is one server-sent event from the sandbox stream.
type SSEEvent struct {
	Type string
	Data map[string]interface{}
}

// ReadSSE consumes an SSE stream, invoking handle per event until the stream
// ends or handle returns false. Comment lines and unknown fields are skipped
// per the SSE framing rules; multi-line data fields are joined with newlines.
func ReadSSE(r io.Reader, handle func(SSEEvent) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	eventType := ""
	var dataLines []string
	flush := func() bool {
		if len(dataLines) == 0 {
			eventType = ""
			return true
		}
		raw := strings.Join(dataLines, "\n")
		typ := eventType
		eventType, dataLines = "", nil

		ev := SSEEvent{Type: typ}
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			ev.Data = data
			if ev.Type == "" {
				if t, ok := data["type"].(string); ok {
					ev.Type = t
				}
			}
		} else {
			ev.Data = map[string]interface{}{"raw": raw}
		}
		if ev.Type == "" {
			ev.Type = "message"
		}
		return handle(ev)
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if !flush() {
				return nil
			}
		case strings.HasPrefix(line, ":"):
			// comment / keep-alive
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			dataLines = append(dataLines, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	flush()
	return nil
}
