package curvefit

import (
	"strings"

	"github.com/YuminosukeSato/curvefit/regression"
)

// Auto selects the family with the lowest BIC.
const Auto = "auto"

// Fit fits data with the family called name. Names are case-insensitive.
//
// With name "auto" every specifier in specs is fitted and the model with the
// lowest BIC is returned; an empty specs falls back to the configured
// candidates (linear, exponential, logarithmic by default). For any other
// name specs is ignored.
func Fit(name string, data regression.Series, specs []regression.Specifier, opts ...regression.Option) (*regression.Model, error) {
	if strings.EqualFold(strings.TrimSpace(name), Auto) {
		return regression.NewSelector(opts...).SelectBest(data, specs...)
	}

	family, err := regression.ParseFamily(name)
	if err != nil {
		return nil, err
	}
	return regression.Fit(regression.Spec(family), data, opts...)
}
