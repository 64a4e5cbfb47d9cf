package format

import (
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Uptime renders a second count as "1d 2h 3m 4s". A unit appears once it or
// any larger unit is non-zero; seconds always appear.
func Uptime(total uint64) string {
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, strconv.FormatUint(days, 10)+"d")
	}
	if days > 0 || hours > 0 {
		parts = append(parts, strconv.FormatUint(hours, 10)+"h")
	}
	if days > 0 || hours > 0 || minutes > 0 {
		parts = append(parts, strconv.FormatUint(minutes, 10)+"m")
	}
	parts = append(parts, strconv.FormatUint(seconds, 10)+"s")

	return strings.Join(parts, " ")
}
