package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_StartsWithWelcome(t *testing.T) {
	c := NewConversation()
	require.Len(t, c.Turns, 1)
	assert.Equal(t, SpeakerAssistant, c.Turns[0].Speaker)
	assert.Equal(t, WelcomeMessage, c.Turns[0].Text)
}

func TestConversation_Ask(t *testing.T) {
	c := NewConversation()
	p := NewProvider(nil, nil)

	r, ok := c.Ask(context.Background(), p, "  visa types  ")
	require.True(t, ok)
	assert.Equal(t, StatusError, r.Status)
	require.Len(t, c.Turns, 3)
	assert.Equal(t, Turn{Speaker: SpeakerUser, Text: "visa types"}, c.Turns[1])
	assert.Equal(t, visaTypesAnswer, c.Turns[2].Text)
}

func TestConversation_IgnoresBlankInput(t *testing.T) {
	c := NewConversation()

	_, ok := c.Ask(context.Background(), NewProvider(nil, nil), "   ")
	assert.False(t, ok)
	assert.Len(t, c.Turns, 1)
}

func TestConversation_EmptyReplyBecomesApology(t *testing.T) {
	c := NewConversation()
	c.AddReply(Response{Status: StatusError})
	assert.Equal(t, ApologyMessage, c.Turns[1].Text)
}
