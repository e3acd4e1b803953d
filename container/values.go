// File: values.go
// Role: attribute value helpers shared by normalization, query-mark
//       derivation and center detection. Attribute values are scalars
//       (int, float64, string), marks.Pair, or []any lists of scalars.

package container

import (
	"fmt"
	"sort"
)

// valueEqual compares two scalar attribute values. Lists are compared
// element-wise. nil equals only nil.
func valueEqual(a, b any) bool {
	la, aList := a.([]any)
	lb, bList := b.([]any)
	if aList || bList {
		if !aList || !bList {
			return false
		}
		return listEqual(la, lb)
	}
	return a == b
}

// listEqual compares two lists element-wise.
func listEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// bondOrder extracts an integer bond order from an attribute value,
// returning 0 for absent or non-integer values.
func bondOrder(v any) int {
	order, _ := v.(int)
	return order
}

// lessValue imposes a total order on scalar attribute values so that
// deduplicated mark sets enumerate deterministically: nil first, then
// by type name, then by value within one type.
func lessValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)
	if ta != tb {
		return ta < tb
	}
	switch va := a.(type) {
	case int:
		return va < b.(int)
	case float64:
		return va < b.(float64)
	case string:
		return va < b.(string)
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

// sortValues orders a scalar list with lessValue.
func sortValues(list []any) {
	sort.Slice(list, func(i, j int) bool { return lessValue(list[i], list[j]) })
}
