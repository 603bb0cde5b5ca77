package domain

import "strings"

// DefaultCategory is used when no rule matches a product title.
const DefaultCategory = "general"

// categoryRule maps title keywords to a category. Rules are evaluated in
// order, first match wins.
type categoryRule struct {
	keywords []string
	category string
}

// categoryRules is the fixed taxonomy for keyword-based category
// inference. Extend the table, not the matching loop.
var categoryRules = []categoryRule{
	{[]string{"tent", "tarp", "shelter", "bivy"}, "camping-gear"},
	{[]string{"sleeping bag", "sleeping pad", "quilt", "camp pillow"}, "sleep-systems"},
	{[]string{"backpack", "daypack", "rucksack"}, "backpacks"},
	{[]string{"stove", "cookware", "cook set", "kettle", "pot"}, "camp-kitchen"},
	{[]string{"headlamp", "lantern", "flashlight"}, "lighting"},
	{[]string{"boot", "trail shoe", "hiking shoe", "sandal"}, "footwear"},
	{[]string{"jacket", "rain shell", "fleece", "parka"}, "apparel"},
	{[]string{"water filter", "purifier", "hydration", "water bottle"}, "hydration"},
	{[]string{"knife", "multi-tool", "hatchet", "axe"}, "tools"},
	{[]string{"trekking pole", "carabiner", "compass", "gps"}, "navigation-and-trekking"},
}

// InferCategory derives a category from a product title by keyword
// matching against the fixed taxonomy. The result is a pure function of
// the title text: the same title always maps to the same category.
func InferCategory(title string) string {
	lower := strings.ToLower(title)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	return DefaultCategory
}
