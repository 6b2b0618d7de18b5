package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
	}, zerolog.Nop())
}

func TestClient_ChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req["model"])
		assert.Equal(t, 0.7, req["temperature"])

		msgs, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 1)
		msg := msgs[0].(map[string]any)
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "Is Cardano sustainable?", msg["content"])

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Yes, fairly."}}]}`))
	}))
	defer srv.Close()

	answer, err := testClient(srv.URL).ChatCompletion(context.Background(), "Is Cardano sustainable?")
	require.NoError(t, err)
	assert.Equal(t, "Yes, fairly.", answer)
}

func TestClient_ChatCompletion_OutputFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":"Fallback answer"}`))
	}))
	defer srv.Close()

	answer, err := testClient(srv.URL).ChatCompletion(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "Fallback answer", answer)
}

func TestClient_ChatCompletion_UnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"something else"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ChatCompletion(context.Background(), "question")
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Body, "something else")
}

func TestClient_ChatCompletion_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ChatCompletion(context.Background(), "question")
	assert.ErrorContains(t, err, "status 401")
}

func TestClient_ChatCompletion_TransportError(t *testing.T) {
	_, err := testClient("http://127.0.0.1:1").ChatCompletion(context.Background(), "question")
	assert.ErrorContains(t, err, "request failed")
}
