package domain

import "testing"

func TestInferCategory_KeywordMatch(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Kelty Grand Mesa 2 Person Tent", "camping-gear"},
		{"Ultralight Backpacking Tarp 10x10", "camping-gear"},
		{"Therm-a-Rest Sleeping Pad NeoAir", "sleep-systems"},
		{"Osprey Atmos AG 65 Backpack", "backpacks"},
		{"MSR PocketRocket 2 Stove Kit", "camp-kitchen"},
		{"Black Diamond Spot 400 Headlamp", "lighting"},
		{"Salomon Quest 4 GTX Hiking Boot", "footwear"},
		{"Patagonia Torrentshell 3L Rain Jacket", "apparel"},
		{"Sawyer Squeeze Water Filter System", "hydration"},
		{"Leatherman Wave+ Multi-Tool", "tools"},
		{"Garmin eTrex 32x Handheld GPS", "navigation-and-trekking"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := InferCategory(tt.title)
			if got != tt.expected {
				t.Errorf("InferCategory(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestInferCategory_CaseInsensitive(t *testing.T) {
	got := InferCategory("BIG AGNES COPPER SPUR TENT")
	if got != "camping-gear" {
		t.Errorf("expected camping-gear for uppercase title, got %q", got)
	}
}

func TestInferCategory_Default(t *testing.T) {
	tests := []string{
		"Mystery Gadget 3000",
		"",
		"Deluxe Widget Set",
	}

	for _, title := range tests {
		if got := InferCategory(title); got != DefaultCategory {
			t.Errorf("InferCategory(%q) = %q, want %q", title, got, DefaultCategory)
		}
	}
}

// Inference must be deterministic: the same title maps to the same
// category on every call.
func TestInferCategory_Deterministic(t *testing.T) {
	title := "Nemo Hornet OSMO Tent"

	first := InferCategory(title)
	for i := 0; i < 10; i++ {
		if got := InferCategory(title); got != first {
			t.Fatalf("InferCategory not deterministic: got %q then %q", first, got)
		}
	}
}

// First match wins when a title contains keywords from multiple rules.
func TestInferCategory_FirstMatchWins(t *testing.T) {
	// "tent" (camping-gear) appears before "backpack" (backpacks) in the table.
	got := InferCategory("Tent Repair Kit for Backpack Trips")
	if got != "camping-gear" {
		t.Errorf("expected first rule to win, got %q", got)
	}
}
