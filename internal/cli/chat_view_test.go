package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/ozpath/internal/assistant"
	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/alexanderramin/ozpath/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatDriver(t *testing.T, client llm.ChatClient) *teatest.Driver {
	t.Helper()
	v := newChatView(context.Background(), assistant.NewProvider(client, nil))
	d := teatest.New(t, v, teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestChatView_ShowsWelcome(t *testing.T) {
	d := newChatDriver(t, nil)
	assert.Contains(t, d.PlainView(), "Australian Immigration Assistant")
	assert.Contains(t, d.PlainView(), "enter send")
}

func TestChatView_LocalAnswer(t *testing.T) {
	d := newChatDriver(t, nil)

	d.Submit("How do I get an IELTS score?")

	view := d.PlainView()
	assert.Contains(t, view, "You")
	assert.Contains(t, view, "How do I get an IELTS score?")
	assert.Contains(t, view, "(offline)")

	cv := d.Model.(*chatView)
	require.Len(t, cv.conv.Turns, 3)
	assert.Equal(t, assistant.StatusError, cv.conv.Turns[2].Status)
	assert.False(t, cv.pending)
}

func TestChatView_RemoteAnswer(t *testing.T) {
	chat := &stubChat{reply: "Try the 189 visa."}
	d := newChatDriver(t, chat)

	d.Submit("what should I apply for")

	assert.Contains(t, d.PlainView(), "Try the 189 visa.")
	assert.NotContains(t, d.PlainView(), "(offline)")
	assert.Equal(t, 1, chat.calls)
}

func TestChatView_BlankInputIgnored(t *testing.T) {
	d := newChatDriver(t, &stubChat{reply: "x"})

	d.Submit("   ")

	cv := d.Model.(*chatView)
	assert.Len(t, cv.conv.Turns, 1)
	assert.False(t, cv.pending)
}

func TestChatView_EmptyRemoteReplyShowsApology(t *testing.T) {
	d := newChatDriver(t, nil)
	cv := d.Model.(*chatView)
	cv.pending = true

	d.Send(chatReplyMsg{resp: assistant.Response{Status: assistant.StatusSuccess}})

	assert.Contains(t, d.PlainView(), "couldn't process your request")
	assert.False(t, cv.pending)
}

func TestChatView_Quit(t *testing.T) {
	d := newChatDriver(t, nil)
	d.PressEsc()
	assert.True(t, d.Quitting)

	d = newChatDriver(t, nil)
	d.Submit("/quit")
	assert.True(t, d.Quitting)
}
