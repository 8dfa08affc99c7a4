package main

import (
	"fmt"

	"github.com/foodstation/chatbot/catalog"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// MessageType classifies the intent of a user message. Routing is total
// over the five canonical values; TypeUnknown only appears transiently in
// classifier output and falls through to the default route.
type MessageType string

const (
	TypeGreeting       MessageType = "greeting"
	TypeDishInfo       MessageType = "dish_info"
	TypeRestaurantInfo MessageType = "restaurant_info"
	TypeOrder          MessageType = "order"
	TypeGeneralInquiry MessageType = "general_inquiry"
	TypeUnknown        MessageType = "unknown"
)

// Item is a single extracted food item. Quantity must be at least 1.
type Item struct {
	Dish    string `json:"dish,omitempty"`
	Variant string `json:"variant,omitempty"`
	Size    string `json:"size,omitempty"`
	Qty     int    `json:"qty"`
}

func (i Item) Validate() error {
	if i.Qty < 1 {
		return fmt.Errorf("item quantity must be at least 1, got %d", i.Qty)
	}
	if i.Size != "" && catalog.NormalizeSize(i.Size) == "" {
		return fmt.Errorf("unrecognized size %q", i.Size)
	}

	return nil
}

// MessageContent is the structured view of one processed user message.
// Entities is keyed by a synthetic item key; it stays empty when extraction
// found no dish. MatchedDishes and MatchedRestaurants retain the full
// extraction results so handlers can tell when more than one was mentioned.
type MessageContent struct {
	Input              string          `json:"input"`
	CorrectedInput     string          `json:"corrected_input"`
	RestaurantName     string          `json:"restaurant_name,omitempty"`
	Entities           map[string]Item `json:"entities"`
	MatchedDishes      []string        `json:"-"`
	MatchedRestaurants []string        `json:"-"`
}

// OrderState is reserved for a future ordering step. The core flow never
// populates it.
type OrderState struct {
	CurrentAvailableDishes   []string `json:"current_available_dishes,omitempty"`
	CurrentAvailableVariants []string `json:"current_available_variants,omitempty"`
	CurrentAvailableSizes    []string `json:"current_available_sizes,omitempty"`
	CurrentSelectedVariant   string   `json:"current_selected_variant,omitempty"`
	CurrentSelectedSize      string   `json:"current_selected_size,omitempty"`
	CurrentDishInfo          string   `json:"current_dish_info,omitempty"`
}

// CartItem is reserved for a future ordering step.
type CartItem struct {
	ID         string  `json:"id,omitempty"`
	Dish       string  `json:"dish,omitempty"`
	Variant    string  `json:"variant,omitempty"`
	Size       string  `json:"size,omitempty"`
	Qty        int     `json:"qty,omitempty"`
	Price      float64 `json:"price,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
}

// ConversationState is the running state of one conversation turn. The
// message sequence is append-only; the orchestrator and the selected
// handler each add to it, never rewrite it.
type ConversationState struct {
	SessionID         string          `json:"session_id"`
	Messages          []Message       `json:"messages"`
	MessageType       MessageType     `json:"message_type,omitempty"`
	Content           *MessageContent `json:"message_content,omitempty"`
	Fallback          string          `json:"-"`
	AwaitingSelection bool            `json:"is_awaiting_selection"`
	OrderState        *OrderState     `json:"order_state,omitempty"`
	Cart              []CartItem      `json:"cart,omitempty"`

	// Err records processing failures for observability. The turn still
	// completes with a degraded state.
	Err error `json:"-"`
}

func (s *ConversationState) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// LastUserMessage returns the most recent user utterance.
func (s *ConversationState) LastUserMessage() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content, true
		}
	}

	return "", false
}

const couldNotProcess = "I'm sorry, I couldn't process your message."

// Reply returns the most recent assistant message, or a fixed apology when
// no assistant message exists.
func (s *ConversationState) Reply() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content
		}
	}

	return couldNotProcess
}
