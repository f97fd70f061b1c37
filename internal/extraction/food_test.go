package extraction

import "testing"

func TestExtractFoodDetails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "known venue with lunchtime receipt",
			text: "Greggs\nSausage roll 1.20\n12:30",
			want: "Lunch at Greggs",
		},
		{
			name: "breakfast window",
			text: "Wasabi\n09:05",
			want: "Breakfast at Wasabi",
		},
		{
			name: "evening window",
			text: "Wasabi\n18:45",
			want: "Evening meal at Wasabi",
		},
		{
			name: "pm hour converted",
			text: "Greggs\n7:30 PM",
			want: "Evening meal at Greggs",
		},
		{
			name: "keyword overrides time window",
			text: "Costa\nFlat white coffee\n16:20",
			want: "Coffee/drinks at Costa",
		},
		{
			name: "morning keyword",
			text: "Wasabi\nMorning menu",
			want: "Breakfast at Wasabi",
		},
		{
			name: "header line fallback skips boilerplate",
			text: "Receipt\n12345\nCornerhouse\nTea 2.00",
			want: "Meal at Cornerhouse",
		},
		{
			name: "no usable venue",
			text: "till 4\n123",
			want: "Meal",
		},
		{
			name: "location appended",
			text: "Starbucks\nLocation: Euston",
			want: "Meal at Starbucks, Euston",
		},
		{
			name: "location containing venue is dropped",
			text: "Greggs\nLocation: greggs bakery",
			want: "Meal at Greggs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFoodDetails(tt.text)
			if got != tt.want {
				t.Errorf("extractFoodDetails(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMealTypeFromTime(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"05:00", "Breakfast"},
		{"10:59", "Breakfast"},
		{"11:00", "Lunch"},
		{"14:59", "Lunch"},
		{"15:00", "Evening meal"},
		{"23:15", "Evening meal"},
		{"12:00 AM", "Meal"},
		{"12:30 PM", "Lunch"},
		{"no time", "Meal"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := mealTypeFromTime(tt.text); got != tt.want {
				t.Errorf("mealTypeFromTime(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
