package shipment

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Category is the closed set of shipment classes. Each carries a per-kg rate
// looked up from rates.
type Category int

const (
	UnknownCategory Category = iota
	Local
	International
)

var rates = map[Category]float64{
	Local:         5.0,
	International: 10.0,
}

var categoryNames = map[Category]string{
	Local:         "Local",
	International: "International",
}

// ParseCategory maps user input to a Category, case-insensitively.
// An empty string selects Local, the only kind the desk ever submitted.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local":
		return Local, nil
	case "international":
		return International, nil
	default:
		return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%q is not one of Local, International", s))
	}
}

// Rate is the price per unit of weight. UnknownCategory has no rate.
func (c Category) Rate() float64 {
	return rates[c]
}

func (c Category) Validate() error {
	if _, ok := rates[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Cost is the price of carrying weight under category. Weight is expected to
// have passed ValidateWeight.
func Cost(category Category, weight float64) float64 {
	return weight * category.Rate()
}
