package ddg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Chat(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/duckchat/v1/status", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.Header.Get("x-vqd-accept"))
		w.Header().Set(vqdHeader, "4-chat-token")
	})
	mux.HandleFunc("/duckchat/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "4-chat-token", r.Header.Get(vqdHeader))

		var payload chatPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "gpt-4o-mini", payload.Model)
		require.Len(t, payload.Messages, 1)
		require.Equal(t, "user", payload.Messages[0].Role)
		require.Equal(t, "what is Go?", payload.Messages[0].Content)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"message\":\"Go is a programming \"}\n\n")
		fmt.Fprint(w, "data: {\"message\":\"language.\"}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(WithAPIBase(srv.URL))

	answer, err := client.Chat(context.Background(), ChatRequest{
		Keywords: "what is Go?",
		Model:    "gpt-4o-mini",
	})
	require.NoError(t, err)
	require.Equal(t, "Go is a programming language.", answer)
}

func TestClient_Chat_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := NewClient(WithAPIBase(srv.URL))

	_, err := client.Chat(context.Background(), ChatRequest{Keywords: "hi", Model: "gpt-4o-mini"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no x-vqd-4 token")
}
