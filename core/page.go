package core

// PageSize is the fixed number of accounts per directory page.
const PageSize = 10

// Page is a view over the account collection
type Page struct {
	Items      []*Account `json:"users"`
	Number     int        `json:"current"` // 1-based
	TotalPages int        `json:"pages"`
}

// NormalizePage maps absent or nonsensical page numbers to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Skip returns the number of records preceding the given 1-based page.
func Skip(page int) int {
	return PageSize * (page - 1)
}

// TotalPages returns the page count needed to hold n records.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}
