package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelcompare"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// compareValues implements C8's ternary ordering, delegating to
// feelcompare so the evaluator and the BIF library (min/max and the range
// relations) agree on
// a single definition of "comparable".
func compareValues(l, r feelvalue.Value) (cmp int, ok bool) {
	return feelcompare.Compare(l, r)
}
