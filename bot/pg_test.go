package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func noon() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func sampleRows() []priceRow {
	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}

	return []priceRow{
		{
			FoodName: "Kotthu Rotti", Variant: "Beef", Size: "Medium", Price: price("750.00"),
			RestaurantName: "Kandiah",
			AvailableFrom:  "16:00:00", AvailableUntil: "22:00:00",
			OpeningTime: "08:00:00", ClosingTime: "22:00:00",
		},
		{
			FoodName: "Kotthu Rotti", Variant: "Chicken", Size: "Medium", Price: price("700.00"),
			RestaurantName: "Kandiah",
			AvailableFrom:  "11:00:00", AvailableUntil: "21:00:00",
			OpeningTime: "08:00:00", ClosingTime: "22:00:00",
		},
		{
			FoodName: "Kotthu Rotti", Variant: "BEEF", Size: "Large", Price: price("950.00"),
			RestaurantName: "Mum's Food",
			AvailableFrom:  "12:00:00", AvailableUntil: "20:30:00",
			OpeningTime: "09:00:00", ClosingTime: "21:00:00",
		},
	}
}

func TestBuildPriceReport_GroupsByRestaurant(t *testing.T) {
	report := buildPriceReport(sampleRows(), "", "", noon())

	require.Len(t, report, 2)
	require.Len(t, report["Kandiah"], 2)
	require.Len(t, report["Mum's Food"], 1)
}

func TestBuildPriceReport_VariantFilterIsCaseInsensitive(t *testing.T) {
	report := buildPriceReport(sampleRows(), "beef", "", noon())

	require.Len(t, report["Kandiah"], 1)
	require.Len(t, report["Mum's Food"], 1)
	for _, records := range report {
		for _, record := range records {
			require.Equal(t, "beef", strings.ToLower(record.Variant))
		}
	}
}

func TestBuildPriceReport_SizeFilterDisabled(t *testing.T) {
	report := buildPriceReport(sampleRows(), "", "Small", noon())

	// Size is accepted but ignored; no row matches "Small" yet all are kept.
	require.Len(t, report["Kandiah"], 2)
	require.Len(t, report["Mum's Food"], 1)
}

func TestBuildPriceReport_AvailabilityAndStatus(t *testing.T) {
	report := buildPriceReport(sampleRows(), "", "", noon())

	kandiah := report["Kandiah"]
	require.Equal(t, "Not Available Now", kandiah[0].Availability) // 16:00-22:00 window at noon
	require.Equal(t, "Available Now", kandiah[1].Availability)     // 11:00-21:00 window at noon
	require.Equal(t, "Open Now", kandiah[0].RestaurantStatus)
	require.Equal(t, "16:00 - 22:00", kandiah[0].AvailableTime)
}

func TestBuildPriceReport_DecimalBecomesFloat(t *testing.T) {
	report := buildPriceReport(sampleRows(), "", "", noon())

	require.InDelta(t, 750.0, report["Kandiah"][0].Price, 0.001)
	require.InDelta(t, 950.0, report["Mum's Food"][0].Price, 0.001)
}

func TestPriceReport_JSONKeysAreRestaurants(t *testing.T) {
	report := buildPriceReport(sampleRows(), "beef", "", noon())

	doc, err := report.JSON()
	require.NoError(t, err)
	require.Contains(t, doc, `"Kandiah"`)
	require.Contains(t, doc, `"Mum's Food"`)
	require.Contains(t, doc, `"restaurant_status"`)
}

func TestPriceInquiry_RequiresDishName(t *testing.T) {
	pg := &Pg{now: noon}

	_, err := pg.PriceInquiry(context.Background(), "", "Kandiah", "", "")
	require.Error(t, err)

	_, err = pg.PriceInquiry(context.Background(), "   ", "", "", "")
	require.Error(t, err)
}

func TestWindowLabel(t *testing.T) {
	cases := []struct {
		name        string
		from, until string
		want        string
	}{
		{"inside window", "08:00:00", "22:00:00", "in"},
		{"at lower bound", "12:00:00", "22:00:00", "in"},
		{"at upper bound", "08:00:00", "12:00:00", "in"},
		{"before window", "13:00:00", "22:00:00", "out"},
		{"after window", "06:00:00", "11:00:00", "out"},
		{"hh:mm form", "09:00", "18:00", "in"},
		{"unparseable", "whenever", "18:00:00", "out"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, windowLabel(noon(), tc.from, tc.until, "in", "out"))
		})
	}
}

func TestClockHHMM(t *testing.T) {
	require.Equal(t, "16:00", clockHHMM("16:00:00"))
	require.Equal(t, "09:30", clockHHMM("09:30"))
	require.Equal(t, "soon", clockHHMM("soon"))
}
