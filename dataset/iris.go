package dataset

import (
	_ "embed"
	"fmt"
	"strings"
)

// irisRaw is the canonical 150×4 Iris table (Fisher, 1936; UCI layout),
// whitespace-delimited with the class in the last column.
//
//go:embed iris.data
var irisRaw string

// IrisFeatureNames are the four measured features, in column order.
var IrisFeatureNames = []string{
	"sepal length (cm)",
	"sepal width (cm)",
	"petal length (cm)",
	"petal width (cm)",
}

// Iris returns a fresh Table holding the embedded Iris dataset:
// 150 observations, 4 features, 3 classes of 50 each.
//
// Each call parses the embedded text anew, so callers may mutate the
// returned matrix freely. The embedded data is compile-time fixed; a
// parse failure here is a build defect, hence the panic.
func Iris() *Table {
	t, err := Parse(strings.NewReader(irisRaw), WithFeatureNames(IrisFeatureNames...))
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded iris fixture is corrupt: %v", err))
	}

	return t
}
