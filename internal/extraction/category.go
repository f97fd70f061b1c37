package extraction

// Category is the closed set of receipt types the classifier can assign.
type Category int

const (
	CategoryOther Category = iota
	CategoryTrain
	CategoryFlight
	CategoryHotel
	CategoryFood
	CategoryParking
	CategoryTube
)

// String returns the display label for a category.
func (c Category) String() string {
	switch c {
	case CategoryTrain:
		return "Train"
	case CategoryFlight:
		return "Flight"
	case CategoryHotel:
		return "Hotel"
	case CategoryFood:
		return "Food"
	case CategoryParking:
		return "Parking"
	case CategoryTube:
		return "Tube"
	default:
		return "Other"
	}
}
