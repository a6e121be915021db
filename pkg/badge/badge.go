// Package badge assigns deterministic color classes to list items.
package badge

// Class is a set of CSS utility classes describing a badge color.
type Class string

// palette holds the rotation order. Clients render badges by cycling
// through these classes so adjacent rows get distinct colors.
var palette = []Class{
	"bg-blue-100 text-blue-800",
	"bg-orange-100 text-orange-800",
	"bg-purple-100 text-purple-800",
	"bg-green-100 text-green-800",
	"bg-indigo-100 text-indigo-800",
	"bg-pink-100 text-pink-800",
	"bg-gray-100 text-gray-800",
}

// Size returns the number of colors in the palette.
func Size() int {
	return len(palette)
}

// Color returns the badge class for an item at the given position.
// The item index and row index are summed so colors shift by one on
// each successive row.
func Color(itemIndex, rowIndex int) Class {
	n := (itemIndex + rowIndex) % len(palette)
	if n < 0 {
		n += len(palette)
	}
	return palette[n]
}
