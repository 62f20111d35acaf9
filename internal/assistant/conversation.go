package assistant

import (
	"context"
	"strings"
)

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type Turn struct {
	Speaker Speaker
	Text    string
	Status  Status
}

// Conversation is the transcript kept on screen. It is never sent to the
// completion endpoint.
type Conversation struct {
	Turns []Turn
}

// NewConversation starts a transcript with the welcome message.
func NewConversation() *Conversation {
	return &Conversation{Turns: []Turn{{Speaker: SpeakerAssistant, Text: WelcomeMessage, Status: StatusSuccess}}}
}

// AddUser records a question. Blank input is ignored and reports false.
func (c *Conversation) AddUser(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.Turns = append(c.Turns, Turn{Speaker: SpeakerUser, Text: text})
	return true
}

// AddReply records an answer. An empty message is replaced by the apology.
func (c *Conversation) AddReply(r Response) {
	msg := r.Message
	if strings.TrimSpace(msg) == "" {
		msg = ApologyMessage
	}
	c.Turns = append(c.Turns, Turn{Speaker: SpeakerAssistant, Text: msg, Status: r.Status})
}

// Ask records the question, fetches the answer and records it.
func (c *Conversation) Ask(ctx context.Context, p *Provider, text string) (Response, bool) {
	if !c.AddUser(text) {
		return Response{}, false
	}
	r := p.GetResponse(ctx, strings.TrimSpace(text))
	c.AddReply(r)
	return r, true
}
