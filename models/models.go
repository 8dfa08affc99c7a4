package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Restaurant is one row of the restaurants table. Opening and closing
// times are stored as wall-clock times of day in HH:MM:SS form.
type Restaurant struct {
	ID          uint64 `gorm:"column:restaurant_id;primaryKey" json:"id"`
	Name        string `json:"name"`
	OpeningTime string `gorm:"type:time" json:"opening_time"`
	ClosingTime string `gorm:"type:time" json:"closing_time"`
}

func (r *Restaurant) TableName() string {
	return "restaurants"
}

func (r *Restaurant) Stringify() string {
	return fmt.Sprintf("Restaurant: %s, Open: %s - %s", r.Name, r.OpeningTime, r.ClosingTime)
}

// FoodItem is one row of the food_items table. A dish can appear several
// times with different variants and sizes, each with its own price and
// availability window.
type FoodItem struct {
	ID             uint64          `gorm:"primaryKey" json:"id"`
	RestaurantID   uint64          `json:"restaurant_id"`
	FoodName       string          `json:"food_name"`
	Variant        string          `json:"variant"`
	Size           string          `json:"size"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	AvailableFrom  string          `gorm:"type:time" json:"available_from"`
	AvailableUntil string          `gorm:"type:time" json:"available_until"`
}

func (m *FoodItem) TableName() string {
	return "food_items"
}

func (m *FoodItem) Stringify() string {
	return fmt.Sprintf("FoodItem: %s, Variant: %s, Size: %s, Price: %s", m.FoodName, m.Variant, m.Size, m.Price.StringFixed(2))
}

// RestaurantWithFoodItems groups a restaurant with its menu rows for
// creation and seeding.
type RestaurantWithFoodItems struct {
	Restaurant Restaurant `json:"restaurant"`
	FoodItems  []FoodItem `json:"food_items,omitempty"`
}

// PriceRecord is one serialized row of a price inquiry. The decimal price
// column is converted to a plain float before serialization.
type PriceRecord struct {
	Dish             string  `json:"dish"`
	Variant          string  `json:"variant"`
	Size             string  `json:"size"`
	Price            float64 `json:"price"`
	Availability     string  `json:"availability"`
	RestaurantStatus string  `json:"restaurant_status"`
	AvailableTime    string  `json:"available_time"`
}

// PriceReport maps restaurant names to their matching price records.
type PriceReport map[string][]PriceRecord

// JSON renders the report as an indented UTF-8 JSON document.
func (r PriceReport) JSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal price report: %w", err)
	}

	return string(data), nil
}
