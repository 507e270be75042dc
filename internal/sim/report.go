package sim

import (
	"fmt"
	"strconv"
)

// Status formats the one-line status shown in the corner of the window.
func Status(s Settings) string {
	return fmt.Sprintf("Dot (Click/Space): %d | Connect Force (I/K): %s | Speed (U/J): %s",
		s.Count, formatValue(s.ConnectDistance), formatValue(s.Speed))
}

// formatValue prints the shortest representation at 32-bit precision so that
// repeated 0.04 steps read as 1.04 rather than 1.0400000000000003.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
