package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foodstation/chatbot/models"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID   string      `json:"session_id"`
	MessageType MessageType `json:"message_type"`
	Reply       string      `json:"reply"`
	Messages    []Message   `json:"messages"`
}

func chatResponseFrom(state *ConversationState) ChatResponse {
	return ChatResponse{
		SessionID:   state.SessionID,
		MessageType: state.MessageType,
		Reply:       state.Reply(),
		Messages:    state.Messages,
	}
}

type CreateRestaurantsRequest struct {
	Restaurants []struct {
		Name        string `json:"name"`
		OpeningTime string `json:"opening_time"`
		ClosingTime string `json:"closing_time"`
		FoodItems   []struct {
			FoodName       string  `json:"food_name"`
			Variant        string  `json:"variant"`
			Size           string  `json:"size"`
			Price          float64 `json:"price"`
			AvailableFrom  string  `json:"available_from"`
			AvailableUntil string  `json:"available_until"`
		} `json:"food_items"`
	} `json:"restaurants"`
}

func (c *CreateRestaurantsRequest) Validate() error {
	if len(c.Restaurants) == 0 {
		return fmt.Errorf("no restaurants provided")
	}

	for _, r := range c.Restaurants {
		if r.Name == "" || r.OpeningTime == "" || r.ClosingTime == "" {
			return fmt.Errorf("restaurant name, opening time, and closing time are required")
		}
		for _, m := range r.FoodItems {
			if m.FoodName == "" || m.Price <= 0 {
				return fmt.Errorf("food item name and a positive price are required")
			}
		}
	}

	return nil
}

func (c *CreateRestaurantsRequest) ToModels() []models.RestaurantWithFoodItems {
	restaurants := make([]models.RestaurantWithFoodItems, len(c.Restaurants))
	for i, r := range c.Restaurants {
		restaurants[i] = models.RestaurantWithFoodItems{
			Restaurant: models.Restaurant{
				Name:        r.Name,
				OpeningTime: r.OpeningTime,
				ClosingTime: r.ClosingTime,
			},
			FoodItems: make([]models.FoodItem, len(r.FoodItems)),
		}

		for j, m := range r.FoodItems {
			restaurants[i].FoodItems[j] = models.FoodItem{
				FoodName:       m.FoodName,
				Variant:        m.Variant,
				Size:           m.Size,
				Price:          decimal.NewFromFloat(m.Price),
				AvailableFrom:  m.AvailableFrom,
				AvailableUntil: m.AvailableUntil,
			}
		}
	}

	return restaurants
}
