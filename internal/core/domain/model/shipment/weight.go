package shipment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"courier/internal/pkg/errs"
)

var errWeightIsNegative = errors.New("weight must not be negative")

// ParseWeight converts raw form input into a weight. Non-numeric, NaN,
// infinite and negative values fail with errs.ErrValueIsInvalid.
func ParseWeight(raw string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%q is not a number", raw))
	}
	if err = ValidateWeight(w); err != nil {
		return 0, err
	}
	return normalizeWeight(w), nil
}

func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", w))
	}
	if w < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", errWeightIsNegative)
	}
	return nil
}

// normalizeWeight turns -0 into 0 so costs never render as -0.
func normalizeWeight(w float64) float64 {
	if w == 0 {
		return 0
	}
	return w
}
