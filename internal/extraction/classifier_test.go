package extraction

import "testing"

func TestClassifyReceipt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{
			name: "trainline vendor",
			text: "Thank you for booking with Trainline",
			want: CategoryTrain,
		},
		{
			name: "advance single fare",
			text: "1x Advance Single, Coach B, Seat 42",
			want: CategoryTrain,
		},
		{
			name: "paybyphone parking",
			text: "PayByPhone session 1234 confirmed",
			want: CategoryParking,
		},
		{
			name: "airport parking",
			text: "Your airport parking booking",
			want: CategoryParking,
		},
		{
			name: "transport for london",
			text: "Transport for London journey statement",
			want: CategoryTube,
		},
		{
			name: "oyster card",
			text: "Your Oyster travel summary",
			want: CategoryTube,
		},
		{
			name: "known food vendor",
			text: "Greggs - 1x Sausage Roll",
			want: CategoryFood,
		},
		{
			name: "background check is other",
			text: "Disclosure and Barring Service application fee",
			want: CategoryOther,
		},
		{
			name: "generic car park",
			text: "Pay and display car park ticket",
			want: CategoryParking,
		},
		{
			name: "flight by scoring",
			text: "Boarding closes at gate 22. One passenger.",
			want: CategoryFlight,
		},
		{
			name: "hotel by scoring",
			text: "Your room is ready. Check-in from 15:00, one guest.",
			want: CategoryHotel,
		},
		{
			name: "no keywords at all",
			text: "zzz qqq xyzzy",
			want: CategoryOther,
		},
		{
			name: "empty text",
			text: "",
			want: CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyReceipt(tt.text)
			if got != tt.want {
				t.Errorf("ClassifyReceipt(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Train booking confirmations routinely upsell parking, so the train
// rule must win over every parking rule.
func TestClassifyReceiptTrainBeatsParking(t *testing.T) {
	text := "Trainline booking. Pre-book airport parking and save 20%. Car park options available."
	if got := ClassifyReceipt(text); got != CategoryTrain {
		t.Errorf("ClassifyReceipt = %v, want Train", got)
	}
}

func TestClassifyReceiptScoringTieBreak(t *testing.T) {
	// One train keyword and one flight keyword: the fixed evaluation
	// order keeps Train.
	text := "platform gate"
	if got := ClassifyReceipt(text); got != CategoryTrain {
		t.Errorf("ClassifyReceipt(%q) = %v, want Train", text, got)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryTrain, "Train"},
		{CategoryFlight, "Flight"},
		{CategoryHotel, "Hotel"},
		{CategoryFood, "Food"},
		{CategoryParking, "Parking"},
		{CategoryTube, "Tube"},
		{CategoryOther, "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
