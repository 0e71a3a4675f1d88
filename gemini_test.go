package main

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeTextGenerator struct {
	reply string
	err   error

	lastSystem string
	lastUser   string
}

func (f *fakeTextGenerator) Generate(ctx context.Context, system, userText string) (string, error) {
	f.lastSystem = system
	f.lastUser = userText
	return f.reply, f.err
}

func TestChatReplyUsesPersona(t *testing.T) {
	gen := &fakeTextGenerator{reply: "נו באמת"}

	got := chatReply(context.Background(), gen, "מה המצב")
	if got != "נו באמת" {
		t.Errorf("chatReply = %q, want the provider's reply", got)
	}
	if gen.lastSystem != personaPrompt {
		t.Errorf("system prompt = %q, want the fixed persona", gen.lastSystem)
	}
	if !strings.Contains(gen.lastUser, "מה המצב") {
		t.Errorf("user text %q lost the original message", gen.lastUser)
	}
}

func TestChatReplyRateLimited(t *testing.T) {
	gen := &fakeTextGenerator{err: errRateLimited}

	got := chatReply(context.Background(), gen, "hi")
	if got != userMessage(errRateLimited) {
		t.Errorf("chatReply = %q, want the fixed quota message", got)
	}
}

func TestChatReplyFailureDoesNotLeakDetail(t *testing.T) {
	gen := &fakeTextGenerator{err: fmt.Errorf("%w: secret-internal-detail", errProviderFailure)}

	got := chatReply(context.Background(), gen, "hi")
	if got == "" {
		t.Fatal("chatReply returned nothing on failure")
	}
	if strings.Contains(got, "secret-internal-detail") {
		t.Errorf("chatReply %q leaks internal error detail", got)
	}
}
