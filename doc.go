// Package curvefit fits small parametric curve families to two-dimensional
// sample data and scores every fit with information criteria.
//
// Three families are supported, each with a closed-form estimator:
//
//   - linear:      y = c1·x + c0
//   - exponential: y = c0·e^(c1·x)
//   - logarithmic: y = c0 + c1·ln(x)
//
// Every fitted model carries an analysis record with R², AIC, BIC and the
// per-coefficient standard errors. In "auto" mode the family with the lowest
// BIC among a candidate list is returned; on exact ties the earlier candidate
// wins.
//
// # Installation
//
//	go get github.com/YuminosukeSato/curvefit
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/curvefit"
//	    "github.com/YuminosukeSato/curvefit/regression"
//	)
//
//	func main() {
//	    data, err := regression.SeriesFromXY(
//	        []float64{1, 2, 3, 4},
//	        []float64{2, 4, 6, 8},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := curvefit.Fit("auto", data, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(model)             // y = 2x + 0
//	    fmt.Println(model.Predict(10)) // 20
//	}
//
// # Packages
//
//   - regression: series, families, estimators, goodness of fit and the BIC selector
//   - core/matrix: small dense matrix helpers on top of gonum/mat
//   - core/parallel: range partitioning used to fit candidates concurrently
//   - pkg/errors: typed errors (InvalidInput, DegenerateFit, Unimplemented) and warnings
//   - pkg/log: structured logging through zerolog or slog
//
// # Errors
//
// Failures are returned, never hidden behind NaN:
//
//	_, err := curvefit.Fit("linear", constant, nil)
//	var deg *errors.DegenerateFitError
//	if errors.As(err, &deg) {
//	    // zero variance in y
//	}
//
// # License
//
// curvefit is released under the MIT License.
package curvefit
