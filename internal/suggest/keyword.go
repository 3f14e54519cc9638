package suggest

import (
	"strings"

	"fjacquet/weekledger/internal/models"
)

// builtinKeywords maps each category to fragments commonly found in expense
// descriptions. Keywords must be lower case. Users can extend these lists
// through the keywords section of the mappings file.
var builtinKeywords = map[models.Category][]string{
	models.CategoryFood: {
		"coffee", "restaurant", "grocery", "groceries", "supermarket",
		"lunch", "dinner", "breakfast", "bakery", "pizza", "takeaway",
		"snack", "cafe",
	},
	models.CategoryTransport: {
		"bus", "train", "tram", "taxi", "uber", "fuel", "petrol",
		"parking", "metro", "flight", "bike share", "toll",
	},
	models.CategoryHousing: {
		"rent", "mortgage", "furniture", "plumber", "locksmith",
		"home insurance", "property tax",
	},
	models.CategoryEntertainment: {
		"cinema", "movie", "concert", "netflix", "spotify", "theater",
		"museum", "festival", "streaming",
	},
	models.CategoryUtilities: {
		"electricity", "water bill", "internet", "phone bill", "heating",
		"mobile plan", "broadband", "trash collection",
	},
	models.CategoryHealth: {
		"pharmacy", "doctor", "dentist", "hospital", "medicine", "gym",
		"therapy", "optician", "vaccine",
	},
	models.CategoryShopping: {
		"clothes", "shoes", "amazon", "electronics", "bookstore", "gift",
		"mall", "hardware store",
	},
}

// matchKeyword scans the description for category keywords. When several
// keywords match, the longest one wins; ties go to the category declared
// first. The extra map extends the built-in lists.
func matchKeyword(description string, extra map[models.Category][]string) (models.Category, bool) {
	lower := strings.ToLower(description)
	if strings.TrimSpace(lower) == "" {
		return models.CategoryOther, false
	}

	best := models.CategoryOther
	bestLen := 0
	for _, category := range models.Categories() {
		for _, keyword := range builtinKeywords[category] {
			if len(keyword) > bestLen && strings.Contains(lower, keyword) {
				best = category
				bestLen = len(keyword)
			}
		}
		for _, keyword := range extra[category] {
			keyword = strings.ToLower(keyword)
			if len(keyword) > bestLen && strings.Contains(lower, keyword) {
				best = category
				bestLen = len(keyword)
			}
		}
	}

	return best, bestLen > 0
}
