package main

import (
	"fmt"
	"strings"
)

// The five terminal handlers. Each consumes the structured state and
// returns exactly one assistant reply; the caller appends it to the
// conversation.

const welcomeReply = "Hello! Welcome to Foodstation.lk! How can I help you with food delivery today?"

func handleGreeting(state *ConversationState) string {
	// A canned reply produced during classification wins over the fixed
	// welcome text.
	if state.Fallback != "" {
		return state.Fallback
	}

	return welcomeReply
}

func handleOrder(state *ConversationState) string {
	content := state.Content
	if content == nil || len(content.Entities) == 0 {
		return "I'd be happy to help you place an order! Could you please tell me what you'd like to order?"
	}

	var items []string
	for _, item := range content.Entities {
		items = append(items, fmt.Sprintf("- %s (%s) - Size: %s - Qty: %d", item.Dish, item.Variant, item.Size, item.Qty))
	}

	itemsText := strings.Join(items, "\n")
	restaurant := content.RestaurantName
	if restaurant == "" {
		restaurant = "Not specified"
	}

	return fmt.Sprintf(`I'll help you with your order! Here's what I understood:

Restaurant: %s
Items:
%s

Would you like to proceed with this order or make any changes?`, restaurant, itemsText)
}

func handleDishInfo(state *ConversationState) string {
	content := state.Content
	if content == nil || len(content.Entities) == 0 {
		return "I can help you with dish information! Which dish are you interested in?"
	}

	var dishName string
	for _, item := range content.Entities {
		if item.Dish != "" {
			dishName = item.Dish
			break
		}
	}
	if dishName == "" {
		return "I'd be happy to help you with dish information! Which dish would you like to know about?"
	}

	var b strings.Builder
	if len(content.MatchedDishes) > 1 || len(content.MatchedRestaurants) > 1 {
		b.WriteString("I can only check one dish and one restaurant at a time, so I'll start with the first ones you mentioned.\n\n")
	}

	b.WriteString("You're asking about " + dishName)
	if content.RestaurantName != "" {
		b.WriteString(" from " + content.RestaurantName)
	}
	b.WriteString(". Let me get that information for you!")

	return b.String()
}

func handleRestaurantInfo(state *ConversationState) string {
	var restaurant string
	if state.Content != nil {
		restaurant = state.Content.RestaurantName
	}

	if restaurant == "" {
		return "I can help you with restaurant information! Which restaurant would you like to know about?"
	}

	return fmt.Sprintf("You're asking about %s. Let me get their information for you!", restaurant)
}

func handleGeneralInquiry(_ *ConversationState) string {
	return `I'm here to help you with food delivery! I can assist you with:

- Finding restaurants and their menus
- Getting information about dishes and prices
- Placing food orders
- Restaurant hours and availability
- Food recommendations

What would you like to know?`
}
