package core

// Category is one of the fixed set of spending categories.
type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Health         Category = "Health"
	Education      Category = "Education"
	Bills          Category = "Bills"
	Other          Category = "Other"
)

var categories = []Category{
	Food,
	Transportation,
	Entertainment,
	Shopping,
	Health,
	Education,
	Bills,
	Other,
}

// chartColors assigns each category its chart color.
var chartColors = map[Category]string{
	Food:           "#FF6B6B",
	Transportation: "#4ECDC4",
	Entertainment:  "#45B7D1",
	Shopping:       "#96CEB4",
	Health:         "#FECA57",
	Education:      "#A55EEA",
	Bills:          "#FF9FF3",
	Other:          "#74B9FF",
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) Valid() bool {
	_, ok := chartColors[c]
	return ok
}

// Color returns the chart color for the category. Unknown categories get the
// Other color so stale persisted data still renders.
func (c Category) Color() string {
	if color, ok := chartColors[c]; ok {
		return color
	}
	return chartColors[Other]
}

func (c Category) String() string {
	return string(c)
}
