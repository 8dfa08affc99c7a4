package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodstation/chatbot/models"
)

type Pg struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPg(connStr string) (*Pg, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	return &Pg{db: db, now: time.Now}, nil
}

// priceRow is the joined food_items/restaurants projection for one match.
type priceRow struct {
	FoodName       string
	Variant        string
	Size           string
	Price          decimal.Decimal
	RestaurantName string
	AvailableFrom  string
	AvailableUntil string
	OpeningTime    string
	ClosingTime    string
}

// PriceInquiry searches food items by dish name (required) and restaurant
// name (optional) with case-insensitive substring matching, filters
// post-hoc by exact variant, and groups the results by restaurant.
// Database errors are logged and returned to the caller.
func (s *Pg) PriceInquiry(ctx context.Context, dish, restaurant, variant, size string) (models.PriceReport, error) {
	if strings.TrimSpace(dish) == "" {
		return nil, fmt.Errorf("dish name is required")
	}

	query := s.db.WithContext(ctx).
		Table("food_items").
		Select(`food_items.food_name, food_items.variant, food_items.size, food_items.price,
			food_items.available_from, food_items.available_until,
			restaurants.name AS restaurant_name, restaurants.opening_time, restaurants.closing_time`).
		Joins("JOIN restaurants ON food_items.restaurant_id = restaurants.restaurant_id").
		Where("food_items.food_name ILIKE ?", "%"+dish+"%")

	if strings.TrimSpace(restaurant) != "" {
		query = query.Where("restaurants.name ILIKE ?", "%"+restaurant+"%")
	}

	var rows []priceRow
	if err := query.
		Order("restaurants.name ASC, food_items.price ASC").
		Scan(&rows).Error; err != nil {
		slog.Error("price inquiry query failed", "dish", dish, "err", err)
		return nil, fmt.Errorf("price inquiry: %w", err)
	}

	return buildPriceReport(rows, variant, size, s.now()), nil
}

// buildPriceReport converts joined rows into the nested
// restaurant -> records mapping. The decimal price becomes a plain float.
func buildPriceReport(rows []priceRow, variant, size string, now time.Time) models.PriceReport {
	_ = size // size filtering is intentionally disabled; menu rows do not key sizes consistently

	variant = strings.ToLower(strings.TrimSpace(variant))
	report := models.PriceReport{}

	for _, row := range rows {
		if variant != "" && strings.ToLower(strings.TrimSpace(row.Variant)) != variant {
			continue
		}

		report[row.RestaurantName] = append(report[row.RestaurantName], models.PriceRecord{
			Dish:             row.FoodName,
			Variant:          row.Variant,
			Size:             row.Size,
			Price:            row.Price.InexactFloat64(),
			Availability:     windowLabel(now, row.AvailableFrom, row.AvailableUntil, "Available Now", "Not Available Now"),
			RestaurantStatus: windowLabel(now, row.OpeningTime, row.ClosingTime, "Open Now", "Closed Now"),
			AvailableTime:    fmt.Sprintf("%s - %s", clockHHMM(row.AvailableFrom), clockHHMM(row.AvailableUntil)),
		})
	}

	return report
}

// windowLabel compares the current time of day against a stored
// open/close window. Overnight windows are not supported.
func windowLabel(now time.Time, from, until, inside, outside string) string {
	fromMin, okFrom := minutesOfDay(from)
	untilMin, okUntil := minutesOfDay(until)
	if !okFrom || !okUntil {
		return outside
	}

	nowMin := now.Hour()*60 + now.Minute()
	if fromMin <= nowMin && nowMin <= untilMin {
		return inside
	}

	return outside
}

func minutesOfDay(clock string) (int, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, strings.TrimSpace(clock)); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}

	return 0, false
}

func clockHHMM(clock string) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, strings.TrimSpace(clock)); err == nil {
			return t.Format("15:04")
		}
	}

	return clock
}

func (s *Pg) CreateRestaurants(ctx context.Context, items []models.RestaurantWithFoodItems) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(&item.Restaurant).Error; err != nil {
				return fmt.Errorf("failed to create restaurant: %w", err)
			}

			var foodItems []models.FoodItem
			for _, foodItem := range item.FoodItems {
				foodItem.RestaurantID = item.Restaurant.ID
				foodItems = append(foodItems, foodItem)
			}

			if len(foodItems) == 0 {
				continue
			}
			if err := tx.Create(&foodItems).Error; err != nil {
				return fmt.Errorf("failed to create food items: %w", err)
			}
		}

		return nil
	})
}

func (s *Pg) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}
