package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func replyFor(t MessageType, state *ConversationState) string {
	return routeMessageType(t)(state)
}

func TestRouteMessageType_CoversClosedSet(t *testing.T) {
	state := &ConversationState{}

	require.Equal(t, welcomeReply, replyFor(TypeGreeting, state))
	require.Contains(t, replyFor(TypeOrder, state), "place an order")
	require.Contains(t, replyFor(TypeDishInfo, state), "dish information")
	require.Contains(t, replyFor(TypeRestaurantInfo, state), "restaurant information")
	require.Contains(t, replyFor(TypeGeneralInquiry, state), "food delivery")
}

func TestRouteMessageType_DefaultsToGeneralInquiry(t *testing.T) {
	state := &ConversationState{}
	want := handleGeneralInquiry(state)

	for _, tag := range []MessageType{"", TypeUnknown, "gibberish", "ORDER"} {
		require.Equal(t, want, replyFor(tag, state), "tag %q", tag)
	}
}

func TestRouteMessageType_Idempotent(t *testing.T) {
	state := &ConversationState{}

	for _, tag := range []MessageType{TypeGreeting, TypeOrder, TypeDishInfo, TypeRestaurantInfo, TypeGeneralInquiry, TypeUnknown} {
		first := replyFor(tag, state)
		second := replyFor(tag, state)
		require.Equal(t, first, second, "tag %q", tag)
	}
}
