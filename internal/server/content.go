package server

import (
	"strconv"

	"feedindia/internal/analytics"
	"feedindia/pkg/types"
)

func foodCategories() []types.FoodCategory {
	return []types.FoodCategory{
		{
			Title: "Non-Perishable Essentials",
			Icon:  "package",
			Items: []string{"Rice", "Pulses (Dal)", "Cooking Oil", "Flour (Atta)", "Sugar", "Salt"},
		},
		{
			Title: "Fresh & Ready-to-Eat",
			Icon:  "apple",
			Items: []string{"Fresh Fruits", "Vegetables", "Pre-packaged Meals", "Bread & Bakery", "Dairy Products"},
		},
		{
			Title: "Supplies & Logistics",
			Icon:  "droplet",
			Items: []string{"Water Bottles", "Blankets", "Soap & Hygiene", "Utensils", "Storage Containers"},
		},
	}
}

func donationTiers() []types.DonationTier {
	return []types.DonationTier{
		{
			AmountRupees: 1500,
			Title:        "Community Meal",
			Description:  "Provides one full day of meals for a shelter or community kitchen",
			Icon:         "users",
			Impact:       "Feeds 50+ people",
			Purpose:      "meals",
		},
		{
			AmountRupees: 15000,
			Title:        "Distribution Support",
			Description:  "Covers fuel and maintenance for our distribution fleet for one week",
			Icon:         "truck",
			Impact:       "Delivers 500+ meals",
			Purpose:      "fleet",
			Featured:     true,
		},
		{
			AmountRupees: 30000,
			Title:        "Awareness Program",
			Description:  "Sponsors community awareness program and volunteer training session",
			Icon:         "book-open",
			Impact:       "Trains 100+ volunteers",
			Purpose:      "awareness",
		},
	}
}

func homeStats(summary analytics.Summary) []types.StatData {
	return []types.StatData{
		{Label: "Total Donations", Value: strconv.Itoa(summary.TotalDonations), Icon: "package"},
		{Label: "Active Donors", Value: strconv.Itoa(summary.ActiveDonors), Icon: "users"},
		{Label: "Donations Fulfilled", Value: strconv.Itoa(summary.Fulfilled), Icon: "check-circle"},
		{Label: "Funds Raised", Value: summary.MonetaryTotal(), Icon: "indian-rupee"},
	}
}

func homeSteps() []types.StepData {
	return []types.StepData{
		{Number: 1, Title: "List your donation", Description: "Tell us what you have, where it is and how long it keeps."},
		{Number: 2, Title: "We collect it", Description: "A volunteer picks it up and brings it to our distribution center."},
		{Number: 3, Title: "Track the impact", Description: "Follow every step until it reaches a shelter or community kitchen."},
	}
}
