package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ozpath/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) llm.ChatClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "sk-test"
	return llm.NewOpenAIClient(cfg, nil)
}

func TestProvider_RemoteSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []llm.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2, "only the system prompt and current question are sent")
		assert.Equal(t, SystemPrompt, body.Messages[0].Content)
		assert.Equal(t, "Tell me about the 189 visa", body.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"The 189 visa is permanent."}}]}`))
	})

	got := NewProvider(client, nil).GetResponse(context.Background(), "Tell me about the 189 visa")

	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, "The 189 visa is permanent.", got.Message)
	assert.NoError(t, got.FallbackReason)
}

func TestProvider_FallbackOnServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got := NewProvider(client, nil).GetResponse(context.Background(), "How many points do I need?")

	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, pointsAnswer, got.Message)
	assert.ErrorIs(t, got.FallbackReason, llm.ErrBadStatus)
}

func TestProvider_FallbackOnEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	got := NewProvider(client, nil).GetResponse(context.Background(), "thanks")

	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, thanksAnswer, got.Message)
}

func TestProvider_FallbackOnMissingKey(t *testing.T) {
	client := llm.NewOpenAIClient(llm.DefaultConfig(), nil)

	got := NewProvider(client, nil).GetResponse(context.Background(), "ielts")

	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, ieltsAnswer, got.Message)
	assert.ErrorIs(t, got.FallbackReason, llm.ErrMissingAPIKey)
}

func TestProvider_NilClient(t *testing.T) {
	var p *Provider
	assert.NotPanics(t, func() {
		p = NewProvider(nil, nil)
		_ = p.GetResponse(context.Background(), "hello")
	})

	got := p.GetResponse(context.Background(), "hello")
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, fallbackAnswer, got.Message)
}

func TestProvider_FallbackOnUnreachableEndpoint(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.APIKey = "sk-test"

	got := NewProvider(llm.NewOpenAIClient(cfg, nil), nil).GetResponse(context.Background(), "what about my family")

	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, familyAnswer, got.Message)
	assert.ErrorIs(t, got.FallbackReason, llm.ErrUnavailable)
}
