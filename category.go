package torrench

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is a site category filter.
type Category struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// DefaultCategory matches every category.
var DefaultCategory = Category{Name: "All categories", Code: "0_0"}

// Categories lists the selectable categories in display order.
// The first entry is always DefaultCategory.
var Categories = []Category{
	DefaultCategory,
	{Name: "Anime", Code: "1_0"},
	{Name: "Audio", Code: "2_0"},
	{Name: "Literature", Code: "3_0"},
	{Name: "Live Action", Code: "4_0"},
	{Name: "Pictures", Code: "5_0"},
	{Name: "Software", Code: "6_0"},
}

// SelectCategory resolves a user-supplied index into a category.
// Returns EINVALID for non-integer or out-of-range input.
func SelectCategory(input string) (Category, error) {
	input = strings.TrimSpace(input)
	idx, err := strconv.Atoi(input)
	if err != nil {
		return Category{}, Errorf(EINVALID, "category index must be an integer, got %q", input)
	}
	if idx < 0 || idx >= len(Categories) {
		return Category{}, Errorf(EINVALID, "category index %d out of range (0-%d)", idx, len(Categories)-1)
	}
	return Categories[idx], nil
}

// CategoryByName finds a category by name or code, ignoring case.
// Returns ENOTFOUND if nothing matches.
func CategoryByName(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(c.Name, name) || c.Code == name {
			return c, nil
		}
	}
	return Category{}, Errorf(ENOTFOUND, "unknown category %q", name)
}

// FormatCategories renders categories as an indexed list, one per line.
func FormatCategories() string {
	var b strings.Builder
	for i, c := range Categories {
		fmt.Fprintf(&b, "[%d] %s\n", i, c.Name)
	}
	return b.String()
}
