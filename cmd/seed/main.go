package main

import (
	"log"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/foodstation/chatbot/config"
	"github.com/foodstation/chatbot/models"
)

// Seeds the two-table pricing schema with a small sample menu so the
// /price endpoint has data to answer from.

func main() {
	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.ConnStr()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}

	if err := db.AutoMigrate(&models.Restaurant{}, &models.FoodItem{}); err != nil {
		log.Fatal("failed to migrate schema:", err)
	}

	seed := sampleData()

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range seed {
			if err := tx.Create(&entry.Restaurant).Error; err != nil {
				return err
			}

			for i := range entry.FoodItems {
				entry.FoodItems[i].RestaurantID = entry.Restaurant.ID
			}
			if err := tx.Create(&entry.FoodItems).Error; err != nil {
				return err
			}

			slog.Info("seeded restaurant", "name", entry.Restaurant.Name, "items", len(entry.FoodItems))
		}

		return nil
	})
	if err != nil {
		log.Fatal("failed to seed database:", err)
	}

	slog.Info("seeding complete", "restaurants", len(seed))
}

func sampleData() []models.RestaurantWithFoodItems {
	price := func(v string) decimal.Decimal {
		d, err := decimal.NewFromString(v)
		if err != nil {
			log.Fatal("invalid seed price:", err)
		}
		return d
	}

	return []models.RestaurantWithFoodItems{
		{
			Restaurant: models.Restaurant{Name: "Kandiah", OpeningTime: "08:00:00", ClosingTime: "22:00:00"},
			FoodItems: []models.FoodItem{
				{FoodName: "Biriyani", Variant: "Beef", Size: "Small", Price: price("650.00"), AvailableFrom: "11:00:00", AvailableUntil: "21:30:00"},
				{FoodName: "Biriyani", Variant: "Chicken", Size: "Medium", Price: price("800.00"), AvailableFrom: "11:00:00", AvailableUntil: "21:30:00"},
				{FoodName: "Kotthu Rotti", Variant: "Beef", Size: "Medium", Price: price("750.00"), AvailableFrom: "16:00:00", AvailableUntil: "22:00:00"},
			},
		},
		{
			Restaurant: models.Restaurant{Name: "Mum's Food", OpeningTime: "09:00:00", ClosingTime: "21:00:00"},
			FoodItems: []models.FoodItem{
				{FoodName: "Kotthu Rotti", Variant: "Beef", Size: "Large", Price: price("950.00"), AvailableFrom: "12:00:00", AvailableUntil: "20:30:00"},
				{FoodName: "Cheese Kotthu", Variant: "Chicken", Size: "Medium", Price: price("900.00"), AvailableFrom: "12:00:00", AvailableUntil: "20:30:00"},
				{FoodName: "Mums Special Lime With Mint", Variant: "", Size: "Small", Price: price("350.00"), AvailableFrom: "09:00:00", AvailableUntil: "21:00:00"},
			},
		},
		{
			Restaurant: models.Restaurant{Name: "Jollybeez", OpeningTime: "10:00:00", ClosingTime: "23:00:00"},
			FoodItems: []models.FoodItem{
				{FoodName: "Fried Rice", Variant: "Chicken", Size: "Medium", Price: price("700.00"), AvailableFrom: "11:30:00", AvailableUntil: "22:30:00"},
				{FoodName: "Noodles", Variant: "Vegetable", Size: "Small", Price: price("550.00"), AvailableFrom: "11:30:00", AvailableUntil: "22:30:00"},
			},
		},
	}
}
