package model

import (
	"fmt"
	"strings"
)

// Category is the age-derived classification used for benefit
// prioritization and reporting.
type Category string

const (
	CategoryRegular      Category = "REGULAR"
	CategoryOctogenarian Category = "OCTOGENARIAN"
	CategoryNonagenarian Category = "NONAGENARIAN"
	CategoryCentenarian  Category = "CENTENARIAN"
)

var categoryLabels = map[Category]string{
	CategoryRegular:      "Regular (below 80)",
	CategoryOctogenarian: "Octogenarian (80-89)",
	CategoryNonagenarian: "Nonagenarian (90-99)",
	CategoryCentenarian:  "Centenarian (100+)",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Categories lists every category in band order, lowest age band first.
func Categories() []Category {
	return []Category{CategoryRegular, CategoryOctogenarian, CategoryNonagenarian, CategoryCentenarian}
}

// ResolveCategory maps an age to its band. Pure and total over
// non-negative ages; dashboard aggregation and application category
// assignment must both go through here so the counts stay consistent.
func ResolveCategory(age int) Category {
	switch {
	case age >= 100:
		return CategoryCentenarian
	case age >= 90:
		return CategoryNonagenarian
	case age >= 80:
		return CategoryOctogenarian
	default:
		return CategoryRegular
	}
}
