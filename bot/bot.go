package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Bot runs one conversation turn end to end: load history, process the
// message, route to a handler, append the reply, persist the turn.
type Bot struct {
	processor *Processor
	history   ChatHistory
}

func NewBot(processor *Processor, history ChatHistory) *Bot {
	return &Bot{
		processor: processor,
		history:   history,
	}
}

// HandleMessage accepts one raw user message and returns the full updated
// conversation. A missing session id starts a new conversation. History
// failures degrade to an empty prior conversation rather than failing the
// turn.
func (b *Bot) HandleMessage(ctx context.Context, sessionID, text string) (*ConversationState, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message must not be empty")
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	prior, err := b.history.Load(ctx, sessionID)
	if err != nil {
		slog.Warn("failed to load chat history", "session", sessionID, "err", err)
		prior = nil
	}

	state := &ConversationState{
		SessionID: sessionID,
		Messages:  prior,
	}
	state.Append(RoleUser, text)

	b.processor.Process(ctx, state)
	if state.Err != nil {
		slog.Warn("turn degraded", "session", sessionID, "err", state.Err)
	}

	reply := routeMessageType(state.MessageType)(state)
	state.Append(RoleAssistant, reply)

	if err := b.history.AppendTurn(ctx, sessionID, text, reply); err != nil {
		slog.Warn("failed to persist turn", "session", sessionID, "err", err)
	}

	return state, nil
}
