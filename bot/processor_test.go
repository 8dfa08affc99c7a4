package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedModel answers classification and extraction prompts with fixed
// payloads, telling them apart by the system instruction.
func scriptedModel(intentJSON, entityJSON string) *mockModel {
	return &mockModel{respond: func(system, _ string, _ int) (string, error) {
		if strings.Contains(system, "Entity Extraction") {
			return entityJSON, nil
		}
		return intentJSON, nil
	}}
}

func newState(input string) *ConversationState {
	state := &ConversationState{SessionID: "test"}
	state.Append(RoleUser, input)
	return state
}

func processWith(t *testing.T, model *mockModel, input string) *ConversationState {
	t.Helper()
	state := newState(input)
	NewProcessor(NewLLMService(model)).Process(context.Background(), state)
	return state
}

func TestProcess_GreetingScenario(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "Hello!", "category": "greeting", "fallback_response": null}`,
		`{"corrected_input": "Hello!", "restaurant": null, "dish": null, "size": null, "variant": null, "order_qty": null}`,
	)

	state := processWith(t, model, "hi")
	require.Equal(t, TypeGreeting, state.MessageType)
	require.NotNil(t, state.Content)
	require.Empty(t, state.Content.Entities)
	require.NoError(t, state.Err)

	reply := routeMessageType(state.MessageType)(state)
	require.Equal(t, welcomeReply, reply)
}

func TestProcess_GreetingUsesClassifierFallback(t *testing.T) {
	canned := "Hi! How can I help you with Foodstation.lk today?"
	model := scriptedModel(
		`{"corrected_input": "Hello!", "category": "greeting", "fallback_response": "`+canned+`"}`,
		`{"corrected_input": "Hello!"}`,
	)

	state := processWith(t, model, "hi")
	require.Equal(t, canned, routeMessageType(state.MessageType)(state))
}

func TestProcess_DishInfoScenario(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "What is the price of beef Biriyani normal from Kandiah?", "category": "dish_info", "fallback_response": null}`,
		`{"corrected_input": "What is the price of beef Biriyani normal from Kandiah?", "restaurant": ["Kandiah"], "dish": ["Biriyani"], "size": "Small", "variant": "Beef", "order_qty": null}`,
	)

	state := processWith(t, model, "price of beef biriyani normal from Kandiah")
	require.Equal(t, TypeDishInfo, state.MessageType)
	require.Equal(t, "Kandiah", state.Content.RestaurantName)

	item, ok := state.Content.Entities["item1"]
	require.True(t, ok)
	require.Equal(t, "Biriyani", item.Dish)
	require.Equal(t, "Beef", item.Variant)
	require.Equal(t, "Small", item.Size)
	require.Equal(t, 1, item.Qty)

	reply := routeMessageType(state.MessageType)(state)
	require.Contains(t, reply, "Biriyani")
	require.Contains(t, reply, "Kandiah")
}

func TestProcess_EmptyDishListIsGuarded(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "how much is it", "category": "dish_info", "fallback_response": null}`,
		`{"corrected_input": "how much is it", "restaurant": [], "dish": [], "size": null, "variant": null, "order_qty": null}`,
	)

	state := processWith(t, model, "how much is it")
	require.Equal(t, TypeDishInfo, state.MessageType)
	require.Empty(t, state.Content.RestaurantName)
	require.Empty(t, state.Content.Entities)

	reply := routeMessageType(state.MessageType)(state)
	require.Contains(t, reply, "Which dish are you interested in?")
}

func TestProcess_FirstMatchOnly(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "x", "category": "order", "fallback_response": null}`,
		`{"corrected_input": "x", "restaurant": ["Kandiah", "Jollybeez"], "dish": ["Biriyani", "Noodles"], "size": null, "variant": null, "order_qty": 3}`,
	)

	state := processWith(t, model, "order biriyani and noodles")
	require.Equal(t, "Kandiah", state.Content.RestaurantName)
	require.Len(t, state.Content.Entities, 1)
	require.Equal(t, "Biriyani", state.Content.Entities["item1"].Dish)
	require.Equal(t, 3, state.Content.Entities["item1"].Qty)
	require.Equal(t, []string{"Biriyani", "Noodles"}, state.Content.MatchedDishes)
	require.Equal(t, []string{"Kandiah", "Jollybeez"}, state.Content.MatchedRestaurants)
}

func TestProcess_InvalidQuantityClampsToOne(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "x", "category": "order", "fallback_response": null}`,
		`{"corrected_input": "x", "dish": ["Noodles"], "order_qty": 0}`,
	)

	state := processWith(t, model, "order zero noodles")
	require.Equal(t, 1, state.Content.Entities["item1"].Qty)
	require.NoError(t, state.Content.Entities["item1"].Validate())
}

func TestProcess_BothBranchesFailDegradesGracefully(t *testing.T) {
	model := &mockModel{respond: func(_, _ string, _ int) (string, error) {
		return "", errors.New("model unavailable")
	}}

	state := processWith(t, model, "hello?")
	require.Equal(t, TypeGeneralInquiry, state.MessageType)
	require.NotNil(t, state.Content)
	require.Equal(t, "hello?", state.Content.Input)
	require.Empty(t, state.Content.Entities)
	require.Error(t, state.Err)

	// The turn still produces a graceful canned reply.
	reply := routeMessageType(state.MessageType)(state)
	require.Contains(t, reply, "I'm here to help you with food delivery!")
}

func TestProcess_NoUserMessage(t *testing.T) {
	state := &ConversationState{}
	NewProcessor(NewLLMService(fixedReply("{}"))).Process(context.Background(), state)

	require.Equal(t, TypeGeneralInquiry, state.MessageType)
	require.Error(t, state.Err)
	require.Empty(t, state.Messages)
}

func TestProcess_UnknownCategoryRoutesToDefault(t *testing.T) {
	model := scriptedModel(
		`{"corrected_input": "x", "category": "unknown", "fallback_response": "Could you clarify how I can assist you with Foodstation.lk?"}`,
		`{"corrected_input": "x"}`,
	)

	state := processWith(t, model, "asdfgh")
	require.Equal(t, TypeUnknown, state.MessageType)

	reply := routeMessageType(state.MessageType)(state)
	require.Contains(t, reply, "I'm here to help you with food delivery!")
}
