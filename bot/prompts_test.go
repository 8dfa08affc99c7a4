package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foodstation/chatbot/catalog"
)

func TestClassificationPrompt(t *testing.T) {
	prompt := classificationPrompt()

	for _, category := range []string{"greeting", "restaurant_info", "dish_info", "order", "general_inquiry", "unknown"} {
		require.Contains(t, prompt, category)
	}
	require.Contains(t, prompt, "valid JSON only")
}

func TestExtractionPrompt_EmbedsCatalog(t *testing.T) {
	prompt := extractionPrompt()

	for _, restaurant := range catalog.Restaurants {
		require.Contains(t, prompt, restaurant)
	}
	require.Contains(t, prompt, "Biriyani")
	require.Contains(t, prompt, "Kanji / Kenda")
	require.Contains(t, prompt, `"half"/"normal" -> Small`)
	require.Contains(t, prompt, `"2 person"/"full" -> Medium`)
	require.Contains(t, prompt, `"4 person"/"large" -> Large`)
}
