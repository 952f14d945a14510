package ddg

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/habiliai/ddg-mcp/errors"
)

const vqdHeader = "x-vqd-4"

type chatPayload struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat sends a single-turn conversation to the duckchat endpoint and
// returns the aggregated response text.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	token, err := c.chatToken(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(chatPayload{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Keywords},
		},
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/duckchat/v1/chat", bytes.NewReader(payload))
	if err != nil {
		return "", errors.WithStack(err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set(vqdHeader, token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("duckduckgo: unexpected status %s from chat", resp.Status)
	}

	// The endpoint streams server-sent events; each data line carries a
	// message fragment until the [DONE] marker.
	var out strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64<<10), maxBodySize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			break
		}

		var event struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			continue
		}
		out.WriteString(event.Message)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "failed to read chat stream")
	}

	return out.String(), nil
}

// chatToken performs the status handshake that issues the x-vqd-4 token
// required by the chat endpoint.
func (c *Client) chatToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/duckchat/v1/status", nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("x-vqd-accept", "1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	token := resp.Header.Get(vqdHeader)
	if token == "" {
		return "", errors.Errorf("duckduckgo: no %s token in chat status response", vqdHeader)
	}
	return token, nil
}
