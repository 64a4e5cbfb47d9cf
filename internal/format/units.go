// Package format turns raw host numbers into the strings shown in the report.
package format

import "fmt"

var units = [...]string{"B", "KB", "MB", "GB", "TB"}

// ScaleBytes renders n with decimal (1000-based) units and two decimals.
// Anything past the last unit stays in TB.
func ScaleBytes(n uint64) string {
	value := float64(n)
	idx := 0
	for value >= 1000 && idx < len(units)-1 {
		value /= 1000
		idx++
	}
	return fmt.Sprintf("%.2f %s", value, units[idx])
}

// Fraction renders "a/b" with both sides scaled.
func Fraction(a, b uint64) string {
	return ScaleBytes(a) + "/" + ScaleBytes(b)
}
