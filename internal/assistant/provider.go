package assistant

import (
	"context"
	"errors"

	"github.com/alexanderramin/ozpath/internal/llm"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Response is what the chat shows. Status is StatusError whenever the
// message came from the local responder; FallbackReason then says why.
type Response struct {
	Message        string
	Status         Status
	FallbackReason error
}

// errNoClient is the fallback reason when no remote client is wired.
var errNoClient = errors.New("no completion client configured")

// Provider answers a question with one remote call and falls back to the
// local responder on any failure.
type Provider struct {
	client llm.ChatClient
	local  *LocalResponder
}

// NewProvider accepts a nil client; every answer is then local.
func NewProvider(client llm.ChatClient, local *LocalResponder) *Provider {
	if local == nil {
		local = NewLocalResponder()
	}
	return &Provider{client: client, local: local}
}

// GetResponse never fails. Only the current question is sent; earlier
// turns are not.
func (p *Provider) GetResponse(ctx context.Context, userText string) Response {
	if p.client == nil {
		return p.fallback(userText, errNoClient)
	}

	resp, err := p.client.Complete(ctx, llm.CompletionRequest{
		Task: llm.TaskChat,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt},
			{Role: llm.RoleUser, Content: userText},
		},
	})
	if err != nil {
		return p.fallback(userText, err)
	}
	return Response{Message: resp.Text, Status: StatusSuccess}
}

func (p *Provider) fallback(userText string, reason error) Response {
	return Response{
		Message:        p.local.Respond(userText),
		Status:         StatusError,
		FallbackReason: reason,
	}
}
