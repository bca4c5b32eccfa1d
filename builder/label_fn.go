// Package builder provides internal helper functions and types
// for configuring label schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based index.
// It must be a pure, deterministic function and never return a blank label.
type LabelFn func(idx int) string

// ExcelColumnLabel returns the “Excel-style” column name for idx, e.g.
// 0→"A", 25→"Z", 26→"AA". This is the default scheme.
// Complexity: O(log₂₆ idx). Panics if idx < 0.
func ExcelColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DecimalLabel returns the decimal string of idx+1, e.g. 0→"1".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx + 1)
}

// PrefixLabel returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if prefix is empty.
func PrefixLabel(prefix string) LabelFn {
	if prefix == "" {
		panic("PrefixLabel: empty prefix")
	}
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithExcelLabels sets the label scheme to ExcelColumnLabel.
func WithExcelLabels() BuilderOption {
	return WithLabelScheme(ExcelColumnLabel)
}

// WithDecimalLabels sets the label scheme to DecimalLabel.
func WithDecimalLabels() BuilderOption {
	return WithLabelScheme(DecimalLabel)
}

// WithPrefixLabels sets the label scheme to PrefixLabel(prefix).
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabel(prefix))
}
