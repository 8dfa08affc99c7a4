package main

// handlerFunc produces the assistant reply for one conversation turn.
type handlerFunc func(*ConversationState) string

// routeMessageType is a pure, total function from the message-type tag to
// a handler. Unset or unrecognized tags (including the classifier's
// transient "unknown") take the general-inquiry arm.
func routeMessageType(t MessageType) handlerFunc {
	switch t {
	case TypeGreeting:
		return handleGreeting
	case TypeOrder:
		return handleOrder
	case TypeDishInfo:
		return handleDishInfo
	case TypeRestaurantInfo:
		return handleRestaurantInfo
	case TypeGeneralInquiry:
		return handleGeneralInquiry
	default:
		return handleGeneralInquiry
	}
}
