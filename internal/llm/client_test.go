package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "sk-test"
	return cfg
}

func writeChoice(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"model":"gpt-3.5-turbo","choices":[{"message":{"role":"assistant","content":` + quote(content) + `}}]}`))
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (c captureObserver) OnCallComplete(e CallEvent) { c.fn(e) }

func TestOpenAIClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 0.7, req.Temperature)
		assert.Equal(t, 1500, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, RoleSystem, req.Messages[0].Role)
		assert.Equal(t, RoleUser, req.Messages[1].Role)
		assert.Equal(t, "What is a 189 visa?", req.Messages[1].Content)

		writeChoice(w, "The 189 visa is a permanent visa.")
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "system prompt"},
			{Role: RoleUser, Content: "What is a 189 visa?"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "The 189 visa is a permanent visa.", resp.Text)
	assert.Equal(t, "gpt-3.5-turbo", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOpenAIClient_Complete_TrailingSlashEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		writeChoice(w, "ok")
	}))
	defer srv.Close()

	client := NewOpenAIClient(testConfig(srv.URL+"/"), nil)
	_, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)
}

func TestOpenAIClient_Complete_MissingKeySendsNothing(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""
	_, err := NewOpenAIClient(cfg, nil).Complete(context.Background(), CompletionRequest{})

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
}

func TestOpenAIClient_Complete_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	var got CallEvent
	obs := captureObserver{fn: func(e CallEvent) { got = e }}
	_, err := NewOpenAIClient(testConfig(srv.URL), obs).Complete(context.Background(), CompletionRequest{})

	require.ErrorIs(t, err, ErrBadStatus)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
	assert.False(t, got.Success)
	assert.Equal(t, "BAD_STATUS", got.ErrorCode)
	assert.Equal(t, http.StatusUnauthorized, got.StatusCode)
}

func TestOpenAIClient_Complete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(testConfig(srv.URL), nil).Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIClient_Complete_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChoice(w, "   ")
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(testConfig(srv.URL), nil).Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIClient_Complete_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [`))
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(testConfig(srv.URL), nil).Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	_, err := NewOpenAIClient(cfg, nil).Complete(context.Background(), CompletionRequest{})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOpenAIClient_Complete_Unavailable(t *testing.T) {
	var got CallEvent
	obs := captureObserver{fn: func(e CallEvent) { got = e }}
	client := NewOpenAIClient(testConfig("http://127.0.0.1:1"), obs)

	_, err := client.Complete(context.Background(), CompletionRequest{})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "UNAVAILABLE", got.ErrorCode)
}

func TestOpenAIClient_Complete_SingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewOpenAIClient(testConfig(srv.URL), nil).Complete(context.Background(), CompletionRequest{})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestOpenAIClient_Complete_RequestOverrides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.2, req.Temperature)
		assert.Equal(t, 10, req.MaxTokens)
		writeChoice(w, "ok")
	}))
	defer srv.Close()

	temp, maxTok := 0.2, 10
	_, err := NewOpenAIClient(testConfig(srv.URL), nil).Complete(context.Background(), CompletionRequest{
		Temperature: &temp,
		MaxTokens:   &maxTok,
	})
	require.NoError(t, err)
}

func TestOpenAIClient_TestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 5, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "Hello", req.Messages[0].Content)
		writeChoice(w, "Hi")
	}))
	defer srv.Close()

	var got CallEvent
	obs := captureObserver{fn: func(e CallEvent) { got = e }}
	require.NoError(t, NewOpenAIClient(testConfig(srv.URL), obs).TestConnection(context.Background()))
	assert.Equal(t, TaskConnectionTest, got.Task)
	assert.True(t, got.Success)
}
