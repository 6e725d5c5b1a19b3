// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PageSize is the number of items on a full page
const PageSize = 10

// Paginate returns the page'th page (1-based) of items.
// Pages past the end, and page indices below 1, are empty.
func Paginate[T any](page int, items []T) []T {
	// compare page counts rather than offsets so huge indices cannot overflow
	if page < 1 || page-1 >= (len(items)+PageSize-1)/PageSize {
		return []T{}
	}
	offset := (page - 1) * PageSize
	end := min(offset+PageSize, len(items))
	return items[offset:end]
}

// ParsePage reads a page index from a query string value, defaulting to 1
// when the value is absent or not an integer. Integers too large for int
// saturate, so they still select an empty page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err == nil {
		return page
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return 1
}
