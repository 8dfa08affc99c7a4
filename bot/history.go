package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory/sqlite3"
)

// ChatHistory persists conversation turns across requests, keyed by
// session id.
type ChatHistory interface {
	Load(ctx context.Context, sessionID string) ([]Message, error)
	AppendTurn(ctx context.Context, sessionID, userText, reply string) error
}

// SqliteHistory stores turns in a local sqlite database through the
// langchaingo chat-message-history store, one session per conversation.
type SqliteHistory struct {
	db *sql.DB
}

func NewSqliteHistory(path string) (*SqliteHistory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	return &SqliteHistory{db: db}, nil
}

func (h *SqliteHistory) session(sessionID string) *sqlite3.SqliteChatMessageHistory {
	return sqlite3.NewSqliteChatMessageHistory(
		sqlite3.WithSession(sessionID),
		sqlite3.WithDB(h.db),
	)
}

func (h *SqliteHistory) Load(ctx context.Context, sessionID string) ([]Message, error) {
	stored, err := h.session(sessionID).Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	var messages []Message
	for _, msg := range stored {
		switch msg.GetType() {
		case llms.ChatMessageTypeHuman:
			messages = append(messages, Message{Role: RoleUser, Content: msg.GetContent()})
		case llms.ChatMessageTypeAI:
			messages = append(messages, Message{Role: RoleAssistant, Content: msg.GetContent()})
		}
	}

	return messages, nil
}

func (h *SqliteHistory) AppendTurn(ctx context.Context, sessionID, userText, reply string) error {
	session := h.session(sessionID)

	if err := session.AddUserMessage(ctx, userText); err != nil {
		return fmt.Errorf("store user message: %w", err)
	}
	if err := session.AddAIMessage(ctx, reply); err != nil {
		return fmt.Errorf("store assistant message: %w", err)
	}

	return nil
}

func (h *SqliteHistory) Close() error {
	return h.db.Close()
}
