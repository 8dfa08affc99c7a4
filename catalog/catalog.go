// Package catalog holds the static reference data for the Foodstation
// chatbot: the restaurant and dish name lists used to correct user input,
// the size-term buckets, and the closed set of message intents.
package catalog

import "strings"

// Restaurants lists the platform restaurants with exact spelling.
var Restaurants = []string{
	"Kandiah", "Ice Talk", "Bluberry", "Jollybeez",
	"Mum's Food", "ourselection",
}

// Dishes lists the known dishes with exact spelling.
var Dishes = []string{
	"Kotthu Rotti", "Cheese Kotthu", "Dolphin", "Pittu Kotthu", "Noodles",
	"Pasta", "String Hopper Kotthu", "Bread Kotthu", "Rice & Curry",
	"Schezwan Rice", "Mongolian Rice", "Chopsuey Rice", "Nasi Goreng",
	"Biriyani", "Fried Rice", "Fry", "Bbq", "Tandoori", "Grill", "Devilled",
	"Hot Butter", "Curry", "Kuruma", "Parata", "Mums Special Lime With Mint",
	"Mums Special", "Fresh Juice", "Milk Shakes", "Ice Cream", "Nescafe",
	"Milk Tea", "Milo", "Fruit Salad", "Wattalappam", "Biscuit Pudding",
	"Naan", "French Fries", "Soup", "Salad", "Mayyer Kelangu Fry", "Hopper",
	"Rolls", "Samosa", "Corn", "Vadai", "Shawarma", "Bun", "Kanji / Kenda",
	"Chips", "Mixture", "Manyokka Fry",
}

const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// sizeBuckets maps free-form size terms to the three canonical sizes.
var sizeBuckets = map[string]string{
	"normal":   SizeSmall,
	"half":     SizeSmall,
	"full":     SizeMedium,
	"2 person": SizeMedium,
	"large":    SizeLarge,
	"4 person": SizeLarge,
}

// NormalizeSize maps a free-form size term to one of the three canonical
// buckets. It accepts terms that already are a canonical size. The empty
// string is returned for unrecognized terms.
func NormalizeSize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}

	switch term {
	case "small":
		return SizeSmall
	case "medium":
		return SizeMedium
	case "large":
		return SizeLarge
	}

	return sizeBuckets[term]
}

// SizeTerms returns the recognized free-form terms grouped by canonical
// size, for embedding into prompt instructions.
func SizeTerms() map[string][]string {
	grouped := map[string][]string{}
	for term, size := range sizeBuckets {
		grouped[size] = append(grouped[size], term)
	}

	return grouped
}
