package points

import "strings"

// falsy lists the cell values that disable the circle, compared lowercased.
// Spreadsheet booleans come through as "1"/"0" (raw) or "TRUE"/"FALSE" (formatted),
// numeric cells as "0" or "0.0".
var falsy = map[string]struct{}{
	"":      {},
	"0":     {},
	"0.0":   {},
	"false": {},
	"f":     {},
	"no":    {},
	"n":     {},
	"off":   {},
	"nan":   {},
	"none":  {},
	"null":  {},
}

// Truthy coerces a show_circle cell into a boolean. Empty and false-like
// values are false, anything else is true.
func Truthy(value string) bool {
	_, ok := falsy[strings.ToLower(strings.TrimSpace(value))]
	return !ok
}
