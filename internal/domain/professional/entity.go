package professional

import (
	"errors"
	"fmt"

	"prop-match/internal/domain/location"

	"github.com/google/uuid"
)

// Category is the closed set of professional categories. Integer values match
// the professional_categories reference table.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAdvocate
	CategoryBroker
	CategoryConveyancer
	CategoryBuildAndPest
)

var ErrUnknownCategory = errors.New("unknown professional category")

var categoryNames = map[Category]string{
	CategoryAdvocate:     "Advocate",
	CategoryBroker:       "Broker",
	CategoryConveyancer:  "Conveyancer",
	CategoryBuildAndPest: "BuildAndPest",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return ""
}

// ParseCategory maps a category name to its Category. Names come from
// customer-selected lists, so unknown input is a caller error, not a panic.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Categories lists every known category in declaration order. Used wherever a
// stable iteration order over grouped results is needed.
func Categories() []Category {
	return []Category{CategoryAdvocate, CategoryBroker, CategoryConveyancer, CategoryBuildAndPest}
}

type Professional struct {
	ID              uuid.UUID
	Category        Category
	Verified        bool
	ABN             string // empty means no business registration number on file
	LicenseNumber   string
	CompanyName     string
	Regions         []string
	States          []location.State
	Specialisations []string
}
